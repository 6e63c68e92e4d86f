package constants

import (
	"bytes"
	"strings"
)

// FileFormat classifies a document payload for decoder routing.
type FileFormat string

const (
	PDF     FileFormat = "PDF"
	JSON    FileFormat = "JSON"
	Unknown FileFormat = "UNKNOWN"
)

// AllowedExtensions holds the default allowed file extensions for document ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"json": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a file format.
func MapExtToFormat(ext string) FileFormat {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "json":
		return JSON
	}
	return Unknown
}

// DetectFormat sniffs the payload itself. PDF magic wins over anything a
// filename claims; a payload opening with '{' is taken as a decoder JSON
// envelope.
func DetectFormat(data []byte) FileFormat {
	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return PDF
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return JSON
	}
	return Unknown
}
