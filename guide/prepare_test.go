package guide

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	code string
	lang string
}

// recordingHighlighter uppercases its input and records every call.
type recordingHighlighter struct {
	calls []call
}

func (r *recordingHighlighter) Highlight(code, lang string) (string, error) {
	r.calls = append(r.calls, call{code: code, lang: lang})
	return strings.ToUpper(code), nil
}

func TestPrepareAlignsWithSteps(t *testing.T) {
	g := Phoenix()
	h := &recordingHighlighter{}

	code, err := Prepare(g, h)
	require.NoError(t, err)
	require.Len(t, code, len(g.Steps))

	for i, s := range g.Steps {
		if s.Code.Lang == LangTerminal {
			assert.Equal(t, Snippet{Text: s.Code.Code}, code[i], "step %d", i+1)
			continue
		}
		assert.True(t, code[i].Highlighted, "step %d", i+1)
		assert.Equal(t, strings.ToUpper(s.Code.Code), code[i].Text, "step %d", i+1)
	}
}

func TestPrepareCallsHighlighterWithExactArguments(t *testing.T) {
	g := Phoenix()
	h := &recordingHighlighter{}

	_, err := Prepare(g, h)
	require.NoError(t, err)

	var want []call
	for _, s := range g.Steps {
		if s.Code.Lang != LangTerminal {
			want = append(want, call{code: s.Code.Code, lang: s.Code.Lang})
		}
	}
	assert.Equal(t, want, h.calls)
}

func TestPrepareTerminalStepIsIdentity(t *testing.T) {
	g := Phoenix()
	code, err := Prepare(g, &recordingHighlighter{})
	require.NoError(t, err)

	// "Start your build process"
	assert.Equal(t, "terminal", g.Steps[9].Code.Lang)
	assert.Equal(t, "mix phx.server", code[9].Text)
	assert.False(t, code[9].Highlighted)
}

func TestPrepareCSSStepUsesHighlighterOutput(t *testing.T) {
	g := Phoenix()
	code, err := Prepare(g, &recordingHighlighter{})
	require.NoError(t, err)

	assert.Equal(t, "css", g.Steps[7].Code.Lang)
	assert.Equal(t, "@TAILWIND BASE;\n@TAILWIND COMPONENTS;\n@TAILWIND UTILITIES;", code[7].Text)
}

func TestPrepareEmptyLangPassesThrough(t *testing.T) {
	g := Guide{Slug: "x", Steps: []Step{{Title: "t", Code: CodeSample{Name: "n", Code: "raw <b>"}}}}
	h := &recordingHighlighter{}
	code, err := Prepare(g, h)
	require.NoError(t, err)
	assert.Equal(t, []Snippet{{Text: "raw <b>"}}, code)
	assert.Empty(t, h.calls)
}

func TestPreparePropagatesHighlighterError(t *testing.T) {
	boom := errors.New("malformed input")
	h := HighlighterFunc(func(code, lang string) (string, error) {
		if lang == "js" {
			return "", boom
		}
		return code, nil
	})

	code, err := Prepare(Phoenix(), h)
	require.Error(t, err)
	assert.Nil(t, code)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "step 7 (tailwind.config.js)")
}

func TestPrepareIsDeterministic(t *testing.T) {
	a, err := Prepare(Phoenix(), &recordingHighlighter{})
	require.NoError(t, err)
	b, err := Prepare(Phoenix(), &recordingHighlighter{})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
