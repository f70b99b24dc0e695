package storage

import (
	"encoding/base64"
	"errors"
	"strings"
)

// InlineImage is a decoded data-URI image payload.
type InlineImage struct {
	ContentType string
	Ext         string
	Data        []byte
}

var ErrNotInlineImage = errors.New("not an inline image payload")

// ParseInlineImage decodes a "data:image/<type>;base64,<payload>" string.
func ParseInlineImage(dataURI string) (InlineImage, error) {
	if !strings.HasPrefix(dataURI, "data:image/") {
		return InlineImage{}, ErrNotInlineImage
	}

	rest := strings.TrimPrefix(dataURI, "data:")
	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return InlineImage{}, ErrNotInlineImage
	}

	contentType, encoding, _ := strings.Cut(meta, ";")
	if encoding != "base64" {
		return InlineImage{}, ErrNotInlineImage
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return InlineImage{}, err
	}

	ext := strings.TrimPrefix(contentType, "image/")
	if i := strings.IndexAny(ext, "+;"); i >= 0 {
		ext = ext[:i]
	}

	return InlineImage{
		ContentType: contentType,
		Ext:         ext,
		Data:        data,
	}, nil
}
