package middleware

import (
	"fmt"
	"strings"
)

// Upload validation and sanitization utilities

// ValidateUploadName checks an uploaded spreadsheet's filename.
func ValidateUploadName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	if !strings.HasSuffix(strings.ToLower(name), ".xlsx") {
		return fmt.Errorf("unsupported file format: only .xlsx uploads are accepted")
	}

	// Block path traversal and control characters in names we echo back
	dangerous := []string{"../", "..\\", "\x00", "\n", "\r"}
	for _, d := range dangerous {
		if strings.Contains(name, d) {
			return fmt.Errorf("invalid characters in filename")
		}
	}

	return nil
}

// ValidateUploadSize checks the payload against the configured cap.
func ValidateUploadSize(size, max int64) error {
	if size <= 0 {
		return fmt.Errorf("uploaded file is empty")
	}
	if size > max {
		return fmt.Errorf("file exceeds the %dMB upload limit", max/(1024*1024))
	}
	return nil
}

// SanitizeString removes null bytes and control characters from strings
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")

	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}
