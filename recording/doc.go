// Package recording captures drawing operations as an immutable command
// list that can be played back into vector backends.
//
// A plot is drawn once into a Recorder and the resulting Recording is the
// in-memory figure. Nothing touches the disk until the Recording is played
// into a backend and the backend output is written somewhere.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: a vg.Canvas that emits commands instead of drawing
//   - Recording: commands, pooled resources and document metadata
//   - Backend: opens a vg.Canvas for a specific output format
//
// Because the Recorder is a vg.CanvasSizer, anything that draws on a
// gonum/plot canvas (plot.Plot, plotters, text handlers) can be recorded
// unchanged. Coordinates are points with the origin at the bottom left.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(720, 432)
//	p.Draw(draw.New(rec))
//	r := rec.FinishRecording()
//
// # Playback to Backends
//
// Backends register themselves by name, following the database/sql driver
// pattern:
//
//	import _ "github.com/gogpu/ggplot/recording/backends/svg"
//
//	b, err := recording.NewBackend("svg")
//	if err != nil {
//		return err
//	}
//	if err := r.Playback(b, recording.Tight(14.4)); err != nil {
//		return err
//	}
//	_, err = b.(recording.WriterBackend).WriteTo(w)
//
// Tight crops the output to the drawn content plus padding, which is how
// exported plots are framed.
package recording
