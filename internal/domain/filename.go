package domain

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	imageExtPattern = regexp.MustCompile(`(?i)\.(jpg|jpeg|png)$`)
	datePattern     = regexp.MustCompile(`^\d{8}$`)
)

// ParsedFilename holds the identity fields encoded in an image filename.
type ParsedFilename struct {
	Filename     string
	Namespace    string
	ReceivedDate string
	Token        string
}

// BaseFilename returns the last path segment, accepting both / and \ as
// separators regardless of the host OS.
func BaseFilename(path string) string {
	trimmed := strings.TrimRight(path, `/\`)
	if idx := strings.LastIndexAny(trimmed, `/\`); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}

// ParseFilename extracts token, received date and namespace from a name
// shaped like prefix-TOKEN-YYYYMMDD-NAMESPACE-....ext. Missing or malformed
// segments yield empty fields; it never fails.
func ParseFilename(path string) ParsedFilename {
	base := BaseFilename(path)
	parts := strings.Split(imageExtPattern.ReplaceAllString(base, ""), "-")

	parsed := ParsedFilename{Filename: base}
	if len(parts) > 1 {
		parsed.Token = parts[1]
	}
	if len(parts) > 2 && datePattern.MatchString(parts[2]) {
		d := parts[2]
		parsed.ReceivedDate = d[6:8] + "/" + d[4:6] + "/" + d[0:4]
	}
	if len(parts) > 3 {
		parsed.Namespace = parts[3]
	}
	return parsed
}

// IsImageFile reports whether path has a reviewable image extension.
func IsImageFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

// FolderName returns the last non-empty segment of a directory path, or
// "qc_state" when there is none.
func FolderName(dir string) string {
	parts := strings.FieldsFunc(dir, func(r rune) bool { return r == '/' || r == '\\' })
	if len(parts) == 0 {
		return "qc_state"
	}
	return parts[len(parts)-1]
}

// StateFilePath is where the JSON session state for dir is kept.
func StateFilePath(dir string) string {
	return filepath.Join(dir, FolderName(dir)+".json")
}
