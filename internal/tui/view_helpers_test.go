package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-fraud-guard/models"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "fits", in: "short", max: 10, want: "short"},
		{name: "no limit", in: "anything", max: 0, want: "anything"},
		{name: "ellipsis", in: "abcdefghij", max: 6, want: "abc..."},
		{name: "tiny limit", in: "abcdef", max: 2, want: "ab"},
		{name: "multibyte", in: "ééééééé", max: 5, want: "éé..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestWrapText(t *testing.T) {
	assert.Nil(t, wrapText("   ", 10))
	assert.Equal(t, []string{"one two", "three"}, wrapText("one  two three", 8))
	assert.Equal(t, []string{"averyveryverylongword"}, wrapText("averyveryverylongword", 5))
	assert.Equal(t, []string{"a b"}, wrapText("a\nb", 0))
}

func TestRenderPage(t *testing.T) {
	page := renderPage("TITLE", "line one\nline two", "enter: go")

	assert.Contains(t, page, "TITLE")
	assert.Contains(t, page, "  line one\n  line two\n")
	assert.Contains(t, page, "enter: go")
	assert.Contains(t, page, "ctrl+c: quit")
	assert.Contains(t, renderPage("EMPTY", "", ""), "  -\n")
}

func TestRenderBuildInfoWindow(t *testing.T) {
	view := renderBuildInfoWindow(models.NewAppBuildInfo("1.2.3", "", "deadbeef"))

	assert.Contains(t, view, "FraudGuard")
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "N/A")
	assert.Contains(t, view, "deadbeef")
}

func TestNewStylesFallsBackToDefaultTheme(t *testing.T) {
	assert.Equal(t, newStyles(models.DefaultTheme), newStyles("sepia"))
}
