package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInlineImage_PNG(t *testing.T) {
	t.Parallel()

	img, err := ParseInlineImage("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	require.Equal(t, "image/png", img.ContentType)
	require.Equal(t, "png", img.Ext)
	require.Equal(t, []byte("hello"), img.Data)
}

func TestParseInlineImage_SVGExt(t *testing.T) {
	t.Parallel()

	img, err := ParseInlineImage("data:image/svg+xml;base64,aGVsbG8=")
	require.NoError(t, err)
	require.Equal(t, "svg", img.Ext)
}

func TestParseInlineImage_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"plain url", "https://example.com/a.png"},
		{"non image", "data:text/plain;base64,aGVsbG8="},
		{"no payload", "data:image/png;base64"},
		{"not base64 encoded", "data:image/png;utf8,hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInlineImage(tt.in)
			require.Error(t, err)
		})
	}
}

func TestParseInlineImage_InvalidBase64(t *testing.T) {
	t.Parallel()

	_, err := ParseInlineImage("data:image/png;base64,!!!not-base64!!!")
	require.Error(t, err)
}
