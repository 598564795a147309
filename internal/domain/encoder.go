package domain

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"mime"
	"strings"
	"unicode/utf8"

	"traitpack.dev/pkg/traitpack/internal/adapter"
	m "traitpack.dev/pkg/traitpack/internal/model"
)

const (
	// RawSVGMimeType is reported for SVG files embedded as text.
	RawSVGMimeType = "image/svg"
	// FallbackMimeType is used when an extension has no known MIME type.
	FallbackMimeType = "application/octet-stream"

	svgExtension = "svg"
)

// SupportedExtensions lists the lower-cased extensions exported as traits.
var SupportedExtensions = []string{"svg", "png", "jpg", "jpeg", "gif", "webp", "avif"}

// mimeTypes pins the supported formats so the output does not depend on the
// host's mime.types files.
var mimeTypes = map[string]string{
	"svg":  "image/svg+xml",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"avif": "image/avif",
}

// IsSupportedExtension reports whether ext (lower-cased, no dot) is exported.
func IsSupportedExtension(ext string) bool {
	_, ok := mimeTypes[ext]
	return ok
}

// Encoded is the embedded form of a trait file.
type Encoded struct {
	Data     string
	MimeType string
}

// Encoder turns a trait file into its embedded representation.
type Encoder interface {
	Encode(ctx context.Context, path m.Path, ext string, format m.ImageFormat) (Encoded, error)
}

type encoder struct {
	fsAdapter adapter.TraitFSAdapter
}

// NewEncoder creates an Encoder that reads files through fsAdapter.
func NewEncoder(fsAdapter adapter.TraitFSAdapter) Encoder {
	return &encoder{fsAdapter: fsAdapter}
}

func (e *encoder) Encode(ctx context.Context, path m.Path, ext string, format m.ImageFormat) (Encoded, error) {
	content, err := e.fsAdapter.ReadFile(ctx, path)
	if err != nil {
		slog.Error("Failed to read trait file", "path", path, "error", err)
		return Encoded{}, fmt.Errorf("read %s: %w", path, err)
	}

	if format == m.FormatRaw && ext == svgExtension {
		if !utf8.Valid(content) {
			return Encoded{}, fmt.Errorf("read %s: file is not valid UTF-8", path)
		}

		return Encoded{Data: string(content), MimeType: RawSVGMimeType}, nil
	}

	mimeType := MimeTypeForExtension(ext)

	return Encoded{Data: DataURI(mimeType, content), MimeType: mimeType}, nil
}

// MimeTypeForExtension resolves a MIME type for a lower-cased extension,
// falling back to the standard library table and then to
// application/octet-stream.
func MimeTypeForExtension(ext string) string {
	if mimeType, ok := mimeTypes[ext]; ok {
		return mimeType
	}

	if ext == "" {
		return FallbackMimeType
	}

	mimeType := mime.TypeByExtension("." + ext)
	if mimeType == "" {
		return FallbackMimeType
	}

	// Drop parameters such as "; charset=utf-8".
	if idx := strings.IndexByte(mimeType, ';'); idx >= 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}

	return mimeType
}

// DataURI builds "data:<mime>;base64,<payload>" with standard padded base64.
func DataURI(mimeType string, content []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(content)
}
