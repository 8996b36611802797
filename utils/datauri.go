package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"strings"
)

var ErrInvalidImage = errors.New("invalid base64 image")

type DecodedImage struct {
	ContentType string
	Ext         string
	Data        []byte
}

// DecodeImageDataURI splits "data:<mime>;base64,<data>" and decodes the payload.
func DecodeImageDataURI(uri string) (*DecodedImage, error) {
	meta, data, ok := strings.Cut(uri, ",")
	if !ok || !strings.HasPrefix(meta, "data:") || !strings.HasSuffix(meta, ";base64") {
		return nil, ErrInvalidImage
	}

	contentType := strings.TrimSuffix(strings.TrimPrefix(meta, "data:"), ";base64") // "image/jpeg"
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: unsupported content type %q", ErrInvalidImage, contentType)
	}

	imageData, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if len(imageData) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}

	return &DecodedImage{
		ContentType: contentType,
		Ext:         extensionFor(contentType),
		Data:        imageData,
	}, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	// fallback: use subtype
	if _, sub, ok := strings.Cut(contentType, "/"); ok {
		return "." + sub
	}
	return ""
}
