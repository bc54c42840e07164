// Package sniffer identifies uploaded proof documents by content rather
// than by the declared filename or Content-Type header.
package sniffer

import (
	"bytes"
	"errors"
	"mime"
	"net/textproto"
)

type DocType string

const (
	TypePDF  DocType = "pdf"
	TypeJPEG DocType = "jpeg"
	TypePNG  DocType = "png"
)

type Result struct {
	Type DocType
	MIME string
}

var ErrUnsupportedType = errors.New("unsupported document type")

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Detect inspects the first bytes of a document. Only the formats accepted
// as loan proof (pdf, jpeg, png) are recognised.
func Detect(head []byte) (Result, error) {
	switch {
	case bytes.HasPrefix(head, []byte("%PDF-")):
		return Result{Type: TypePDF, MIME: "application/pdf"}, nil
	case bytes.HasPrefix(head, []byte{0xFF, 0xD8, 0xFF}):
		return Result{Type: TypeJPEG, MIME: "image/jpeg"}, nil
	case bytes.HasPrefix(head, pngMagic):
		return Result{Type: TypePNG, MIME: "image/png"}, nil
	}
	return Result{}, ErrUnsupportedType
}

// MimeTypeFromHeader returns the declared media type without parameters, or
// empty when absent or unparsable.
func MimeTypeFromHeader(header textproto.MIMEHeader) string {
	declared := header.Get("Content-Type")
	if declared == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return ""
	}
	return mediaType
}
