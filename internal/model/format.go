package model

import (
	"fmt"
	"strings"
)

// ImageFormat selects how trait contents are embedded in the output.
type ImageFormat string

const (
	// FormatRaw embeds SVG files as text and every other format as a data URI.
	FormatRaw ImageFormat = "raw"
	// FormatBase64 embeds every file as a base64 data URI.
	FormatBase64 ImageFormat = "base64"
)

// ImageFormats lists the accepted values in help-text order.
var ImageFormats = []ImageFormat{FormatRaw, FormatBase64}

// ParseImageFormat converts a flag or config value into an ImageFormat.
func ParseImageFormat(value string) (ImageFormat, error) {
	switch ImageFormat(strings.ToLower(strings.TrimSpace(value))) {
	case FormatRaw:
		return FormatRaw, nil
	case FormatBase64:
		return FormatBase64, nil
	}

	return "", fmt.Errorf("invalid format %q (expected one of: raw, base64)", value)
}

func (f ImageFormat) String() string {
	return string(f)
}
