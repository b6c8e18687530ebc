package texenv

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeLookPath(available ...string) LookPathFunc {
	return func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func TestProbeAll(t *testing.T) {
	st := Probe(fakeLookPath("latex", "dvipng", "gs"))
	require.Len(t, st, 3)
	for _, s := range st {
		assert.True(t, s.Found(), s.Tool.Name)
	}
	assert.NoError(t, Require(fakeLookPath("latex", "dvipng", "gs")))
}

func TestProbeWindowsGhostscript(t *testing.T) {
	st := Probe(fakeLookPath("gswin32c"))
	assert.Equal(t, "/usr/bin/gswin32c", st[2].Path)
	assert.False(t, st[0].Found())
}

func TestRequireMissing(t *testing.T) {
	err := Require(fakeLookPath("dvipng"))
	require.ErrorIs(t, err, ErrMissing)

	var me *MissingError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, []string{"latex", "ghostscript (gs)"}, me.Missing)
	assert.Equal(t,
		"Error: The following required LaTeX dependencies are missing:\n"+
			"  - latex\n"+
			"  - ghostscript (gs)\n"+
			"\nPlease install them to enable true LaTeX rendering.\n",
		me.Error())
}
