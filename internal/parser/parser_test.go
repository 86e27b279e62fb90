package parser

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type card struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty"`
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n[1,2]\n```", "[1,2]"},
		{"bare fence", "```\n[1]\n```", "[1]"},
		{"no fence", "  [] ", "[]"},
		{"leading whitespace", "\n\n```json[{}]```\n", "[{}]"},
		{"only fence", "```json\n```", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.in))
		})
	}
}

func TestParseJSONArray(t *testing.T) {
	t.Run("fenced array", func(t *testing.T) {
		res := ParseJSONArray[card]("```json\n[{\"question\":\"Q\",\"answer\":\"A\",\"difficulty\":\"hard\"}]\n```")
		require.True(t, res.OK())
		require.Len(t, res.Value, 1)
		assert.Equal(t, "Q", res.Value[0].Question)
		assert.Equal(t, "hard", res.Value[0].Difficulty)
	})

	t.Run("empty output", func(t *testing.T) {
		res := ParseJSONArray[card]("   ")
		assert.Equal(t, OutcomeEmpty, res.Outcome)
		assert.Nil(t, res.Value)
	})

	t.Run("not json", func(t *testing.T) {
		res := ParseJSONArray[card]("not json")
		assert.Equal(t, OutcomeError, res.Outcome)
		assert.Error(t, res.Err)
	})

	t.Run("object instead of array", func(t *testing.T) {
		res := ParseJSONArray[card](`{"question":"Q"}`)
		assert.Equal(t, OutcomeError, res.Outcome)
	})

	t.Run("wrong item shape", func(t *testing.T) {
		res := ParseJSONArray[card](`[{"question": 42}]`)
		assert.Equal(t, OutcomeError, res.Outcome)
	})

	t.Run("empty array", func(t *testing.T) {
		res := ParseJSONArray[card](`[]`)
		require.True(t, res.OK())
		assert.Empty(t, res.Value)
	})

	t.Run("truncated array", func(t *testing.T) {
		res := ParseJSONArray[card](`[{"question":"Q"`)
		assert.Equal(t, OutcomeError, res.Outcome)
	})
}

func TestParseText(t *testing.T) {
	assert.Equal(t, OutcomeEmpty, ParseText(" \n\t").Outcome)

	res := ParseText("  a summary \n")
	require.True(t, res.OK())
	assert.Equal(t, "a summary", res.Value)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "ok", OutcomeOK.String())
	assert.Equal(t, "empty", OutcomeEmpty.String())
	assert.Equal(t, "error", OutcomeError.String())
}

func TestFormatChatAnswer(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "fenced block is re-wrapped alone",
			in:   "Here you go:\n```go\nfmt.Println(1)\n```\nHope it helps",
			want: "```\nfmt.Println(1)\n```",
		},
		{
			name: "code hint wraps whole text",
			in:   "  def add(a, b): return a + b  ",
			want: "```\ndef add(a, b): return a + b\n```",
		},
		{
			name: "code hint is case insensitive",
			in:   "IMPORT os",
			want: "```\nIMPORT os\n```",
		},
		{
			name: "plain prose",
			in:   " Photosynthesis converts light to energy. ",
			want: "**Answer:**\n\nPhotosynthesis converts light to energy.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatChatAnswer(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, FormatChatAnswer(tt.in))
		})
	}
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short"))

	long := strings.Repeat("é", previewLen+5)
	got := preview(long)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("é", previewLen)+"...", got)

	// Multi-byte runes straddling the byte offset are kept whole.
	res := ParseJSONArray[string](`{"note":"` + strings.Repeat("日本", previewLen) + `"}`)
	require.Equal(t, OutcomeError, res.Outcome)
	assert.NotContains(t, res.Err.Error(), `\x`)
	assert.Contains(t, res.Err.Error(), "日本")
}
