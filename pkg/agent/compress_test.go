package agent

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line-%03d %s", i, strings.Repeat("x", 40))
	}
	return strings.Join(lines, "\n")
}

func TestCompressToolOutputPassthrough(t *testing.T) {
	raw := "22/tcp open ssh\n80/tcp open http"
	assert.Equal(t, raw, CompressToolOutput(raw, 3000))

	// Fitting JSON is not reformatted either.
	rawJSON := `{"ports":[22,80],"host":"10.0.0.5"}`
	assert.Equal(t, rawJSON, CompressToolOutput(rawJSON, 3000))
}

func TestCompressToolOutputJSONPretty(t *testing.T) {
	// Oversized on the wire but small once normalized: the pretty form is
	// used when it fits.
	raw := `{"key":` + strings.Repeat(" ", 4000) + `"value"}`
	out := CompressToolOutput(raw, 3000)

	assert.True(t, json.Valid([]byte(out)))
	assert.Equal(t, "{\n  \"key\": \"value\"\n}", out)
}

func TestCompressToolOutputJSONTruncated(t *testing.T) {
	values := make([]int, 3000)
	for i := range values {
		values[i] = i
	}
	raw, err := json.Marshal(map[string]any{"values": values})
	require.NoError(t, err)

	out := CompressToolOutput(string(raw), 1000)

	assert.LessOrEqual(t, len(out), 1000)
	assert.Contains(t, out, "[JSON TRUNCATED:")
	assert.True(t, strings.HasSuffix(out, "total chars]"))
	assert.True(t, strings.HasPrefix(out, "{\n"), "the truncated copy keeps the pretty head")
}

func TestCompressToolOutputCharTruncation(t *testing.T) {
	// Over budget but only a handful of lines: plain character truncation.
	raw := strings.Repeat("banner ", 200) + "\n" + strings.Repeat("body ", 200)
	require.Greater(t, len(raw), 1000)

	out := CompressToolOutput(raw, 1000)

	assert.LessOrEqual(t, len(out), 1000)
	assert.Contains(t, out, fmt.Sprintf("[TRUNCATED: %d total chars]", len(raw)))
	assert.True(t, strings.HasPrefix(out, "banner "))
}

func TestCompressToolOutputLineWindow(t *testing.T) {
	raw := numberedLines(300)
	out := CompressToolOutput(raw, 1000)

	assert.True(t, strings.HasPrefix(out,
		fmt.Sprintf("[tool] 300 lines, %d chars — first 30 + last 30:", len(raw))))
	assert.Contains(t, out, "... [MIDDLE OMITTED] ...")

	assert.Contains(t, out, "line-000")
	assert.Contains(t, out, "line-029")
	assert.Contains(t, out, "line-270")
	assert.Contains(t, out, "line-299")
	assert.NotContains(t, out, "line-030")
	assert.NotContains(t, out, "line-150")
}

func TestCompressToolOutputMarkerOnlyWhenOversized(t *testing.T) {
	hasMarker := func(s string) bool {
		return strings.Contains(s, "[JSON TRUNCATED:") ||
			strings.Contains(s, "[TRUNCATED:") ||
			strings.Contains(s, "[MIDDLE OMITTED]")
	}

	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"short text", "ok"},
		{"exactly at the limit", strings.Repeat("a", 500)},
		{"one over the limit", strings.Repeat("a", 501)},
		{"short json", `{"a":1}`},
		{"long json", `{"a":"` + strings.Repeat("b", 600) + `"}`},
		{"many short lines", numberedLines(200)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := CompressToolOutput(tt.raw, 500)
			if len(tt.raw) > 500 {
				assert.True(t, hasMarker(out), "oversized output must carry a marker")
				assert.NotEqual(t, tt.raw, out)
			} else {
				assert.False(t, hasMarker(out))
				assert.Equal(t, tt.raw, out)
			}
		})
	}
}

func TestTruncateForDisplay(t *testing.T) {
	short := "all good"
	assert.Equal(t, short, truncateForDisplay(short, 2000))

	long := strings.Repeat("z", 5000)
	out := truncateForDisplay(long, 2000)
	assert.LessOrEqual(t, len(out), 2000)
	assert.True(t, strings.HasSuffix(out, "[output truncated]"))

	// Truncation never splits a rune.
	multibyte := strings.Repeat("é", 3000)
	out = truncateForDisplay(multibyte, 2001)
	assert.True(t, utf8.ValidString(out))
	assert.LessOrEqual(t, len(out), 2001)
}
