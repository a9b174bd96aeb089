package constants

import (
	"path/filepath"
	"strings"
)

// Document formats understood by the text extractor.
const (
	PDF   = "PDF"
	XLSX  = "XLSX"
	IMAGE = "IMAGE"
)

// FileTypes holds the allowed file types for the format field on attachments.
var FileTypes = []string{PDF, XLSX, IMAGE}

// AllowedExtensions holds the default allowed file extensions for inbox ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"xlsx": {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tiff": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to a document format, or "" if unsupported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "xlsx":
		return XLSX
	case "jpg", "jpeg", "png", "tiff":
		return IMAGE
	default:
		return ""
	}
}

// FormatForFilename maps a filename to a document format, or "" if unsupported.
func FormatForFilename(name string) string {
	return MapExtToFormat(filepath.Ext(name))
}
