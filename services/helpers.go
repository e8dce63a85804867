package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/coog-esports/admin-api/storage"
)

// validatePeriod checks that an optional end date comes after the start.
func validatePeriod(start time.Time, end *time.Time) error {
	if start.IsZero() {
		return ErrPeriodInvalid
	}
	if end != nil && !end.After(start) {
		return ErrPeriodInvalid
	}
	return nil
}

// periodsOverlap implements the single overlap rule used everywhere:
// two periods intersect when s1 <= e2 AND e1 >= s2, a nil end meaning the
// period is open toward the future.
func periodsOverlap(s1 time.Time, e1 *time.Time, s2 time.Time, e2 *time.Time) bool {
	if e2 != nil && s1.After(*e2) {
		return false
	}
	if e1 != nil && s2.After(*e1) {
		return false
	}
	return true
}

func extensionFromContentType(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImageType, contentType)
	}
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

// publicURL resolves a stored object key to its public URL, nil when the
// uploader is not configured or no image has been uploaded.
func publicURL(uploader storage.FileUploader, key *string) *string {
	if uploader == nil || key == nil || *key == "" {
		return nil
	}
	u := uploader.GetPublicURL(*key)
	if u == "" {
		return nil
	}
	return &u
}
