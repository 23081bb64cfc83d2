package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferRenderer(mode Mode) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	return NewRenderer(out, errOut, mode), out, errOut
}

func TestNewRendererUnknownModeFallsBackToAuto(t *testing.T) {
	r, _, _ := newBufferRenderer(Mode("bogus"))
	// A buffer is not a terminal, so auto resolves to markdown.
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestEffectiveModeExplicit(t *testing.T) {
	for _, mode := range []Mode{ModeText, ModeMarkdown, ModeJSON} {
		r, _, _ := newBufferRenderer(mode)
		assert.Equal(t, mode, r.EffectiveMode())
	}
}

func TestJSON(t *testing.T) {
	r, out, _ := newBufferRenderer(ModeJSON)
	require.NoError(t, r.JSON(map[string]int{"blocks": 2}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, 2, decoded["blocks"])
}

func TestTableMarkdown(t *testing.T) {
	r, out, _ := newBufferRenderer(ModeMarkdown)
	r.Table([]string{"Rule", "Level"}, [][]string{{"no-undef", "error"}})

	s := out.String()
	assert.Contains(t, s, "| Rule ")
	assert.Contains(t, s, "no-undef")
}

func TestTableText(t *testing.T) {
	r, out, _ := newBufferRenderer(ModeText)
	r.Table([]string{"Rule", "Level"}, [][]string{{"no-undef", "error"}})

	s := out.String()
	assert.Contains(t, s, "no-undef")
	assert.NotContains(t, s, "| Rule ")
}

func TestHeaderMarkdown(t *testing.T) {
	r, out, _ := newBufferRenderer(ModeMarkdown)
	r.Header("src/App.jsx")
	assert.True(t, strings.HasPrefix(out.String(), "## src/App.jsx"))
}

func TestWarningAndErrorGoToErrStream(t *testing.T) {
	r, out, errOut := newBufferRenderer(ModeMarkdown)
	r.Warning("careful")
	r.Error("broken")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "careful")
	assert.Contains(t, errOut.String(), "broken")
}

func TestSeverityCellPassthroughOutsideText(t *testing.T) {
	r, _, _ := newBufferRenderer(ModeMarkdown)
	assert.Equal(t, "error", r.SeverityCell("error"))
	assert.Equal(t, "off", r.SeverityCell("off"))
}
