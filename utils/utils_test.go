package utils

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentKey(t *testing.T) {
	a := ContentKey("gdm", []byte("<html>a</html>"), ".pdf")
	b := ContentKey("gdm", []byte("<html>a</html>"), ".pdf")
	c := ContentKey("gdm", []byte("<html>b</html>"), ".pdf")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, strings.HasPrefix(a, "gdm_"))
	assert.True(t, strings.HasSuffix(a, ".pdf"))
	assert.Len(t, a, len("gdm_")+24+len(".pdf"))
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/ldm%20report.pdf", PublicURL("https://cdn.example.com/", "ldm report.pdf"))
}

func TestChromeMeasurerNoRows(t *testing.T) {
	heights, err := ChromeMeasurer{Printer: NewPrinter(0)}.Measure(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, heights)
}
