package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileLineAlignment(t *testing.T) {
	line := FormatFileLine("src/plugins/reviews/types.go", StatusCreated)

	assert.Contains(t, line, "src/plugins/reviews/types.go")
	assert.Contains(t, line, "created")

	idx := strings.Index(line, "created")
	assert.GreaterOrEqual(t, idx, minFileColumnWidth, "status starts at or after the alignment column")
}

func TestFormatFileLineLongPathKeepsGap(t *testing.T) {
	longPath := strings.Repeat("a", minFileColumnWidth+10)
	line := FormatFileLine(longPath, StatusPatched)

	assert.Contains(t, line, longPath+"  ", "at least two spaces separate path and status")
}

func TestStatusStyleKnownStatuses(t *testing.T) {
	for _, status := range []string{StatusCreated, StatusPatched, StatusUnchanged, StatusSkipped, StatusFailed} {
		style := StatusStyle(status)
		assert.Equal(t, status, style.Render(status), "render keeps the text intact")
	}
}

func TestFormatCheckmark(t *testing.T) {
	msg := FormatCheckmark("Plugin created")
	assert.Contains(t, msg, "✔")
	assert.Contains(t, msg, "Plugin created")
}

func TestGetStylesIsStable(t *testing.T) {
	assert.Same(t, GetStyles(), GetStyles())
}
