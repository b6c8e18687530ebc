package pdf

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"rsc.io/pdf"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/recording"
	"github.com/gogpu/ggplot/text"
)

func samplePlot() *recording.Recording {
	rec := recording.NewRecorder(400, 300)
	rec.SetMetadata(recording.Metadata{Title: "f(x) = x²"})
	c := draw.New(rec)

	c.StrokeLines(draw.LineStyle{Color: color.NRGBA{B: 0xff, A: 0xff}, Width: 1.5}, []vg.Point{
		{X: 50, Y: 50}, {X: 200, Y: 250}, {X: 350, Y: 50},
	})
	face := text.Fonts().Lookup(text.Sans(12), 12)
	rec.SetColor(color.Black)
	rec.FillString(face, vg.Point{X: 180, Y: 20}, "f(x)")
	return rec.FinishRecording()
}

func render(t *testing.T, r *recording.Recording, opts ...recording.PlaybackOption) []byte {
	t.Helper()
	b := New()
	require.NoError(t, r.Playback(b, opts...))
	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	return buf.Bytes()
}

func open(t *testing.T, doc []byte) *pdf.Reader {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(doc), int64(len(doc)))
	require.NoError(t, err)
	return r
}

// mediaBox returns the page size, following inherited page attributes.
func mediaBox(t *testing.T, page pdf.Page) (w, h float64) {
	t.Helper()
	v := page.V
	for range 8 {
		if box := v.Key("MediaBox"); !box.IsNull() {
			require.Equal(t, 4, box.Len())
			return box.Index(2).Float64() - box.Index(0).Float64(),
				box.Index(3).Float64() - box.Index(1).Float64()
		}
		v = v.Key("Parent")
	}
	t.Fatal("no MediaBox")
	return 0, 0
}

func TestRegistered(t *testing.T) {
	b, err := recording.NewBackend("pdf")
	require.NoError(t, err)
	assert.IsType(t, &Backend{}, b)
}

func TestSinglePage(t *testing.T) {
	doc := render(t, samplePlot())
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))

	r := open(t, doc)
	require.Equal(t, 1, r.NumPage())
	w, h := mediaBox(t, r.Page(1))
	assert.InDelta(t, 400, w, 0.01)
	assert.InDelta(t, 300, h, 0.01)
}

func TestFontsEmbedded(t *testing.T) {
	r := open(t, render(t, samplePlot()))
	assert.NotEmpty(t, r.Page(1).Fonts())
}

func TestTightViewport(t *testing.T) {
	rec := recording.NewRecorder(500, 500)
	rec.Fill(vg.Rectangle{Min: vg.Point{X: 100, Y: 200}, Max: vg.Point{X: 150, Y: 220}}.Path())
	r := open(t, render(t, rec.FinishRecording(), recording.Tight(10)))

	w, h := mediaBox(t, r.Page(1))
	assert.InDelta(t, 70, w, 0.01)
	assert.InDelta(t, 40, h, 0.01)
}

func TestEmbeddedImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})

	rec := recording.NewRecorder(100, 100)
	rec.DrawImage(vg.Rectangle{Min: vg.Point{X: 10, Y: 10}, Max: vg.Point{X: 17.2, Y: 17.2}}, src)
	r := open(t, render(t, rec.FinishRecording(), recording.DPI(300)))

	xobj := r.Page(1).Resources().Key("XObject")
	assert.NotEmpty(t, xobj.Keys())
}

func TestWriteToBeforeEnd(t *testing.T) {
	_, err := New().WriteTo(io.Discard)
	assert.ErrorIs(t, err, ErrNotFinished)
	assert.ErrorIs(t, New().End(), ErrNotFinished)
}

func TestBeginRejectsEmptyViewport(t *testing.T) {
	_, err := New().Begin(recording.Frame{})
	assert.Error(t, err)

	_, err = New().Begin(recording.Frame{Viewport: ggplot.Rect{W: 10, H: -1}})
	assert.Error(t, err)
}

func TestWriteToRepeatable(t *testing.T) {
	b := New()
	require.NoError(t, samplePlot().Playback(b))

	var first, second bytes.Buffer
	_, err := b.WriteTo(&first)
	require.NoError(t, err)
	_, err = b.WriteTo(&second)
	require.NoError(t, err)
	assert.Equal(t, first.Bytes(), second.Bytes())
	assert.Equal(t, first.Bytes(), b.Bytes())
}
