package errors

import (
	"net/url"
	"strings"
	"unicode"
)

// ValidateWebhookURL validates a webhook URL for safety and correctness.
// Webhook URLs carry card payloads to the delivery target, so the checks
// are intentionally conservative:
//   - No empty URLs
//   - Must parse as an absolute URL
//   - Scheme must be http or https
//   - Host must be present
func ValidateWebhookURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "webhook URL cannot be empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "webhook URL is not a valid URL")
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidInput, "webhook URL must use http or https scheme")
	}

	if u.Host == "" {
		return New(ErrCodeInvalidInput, "webhook URL has no host")
	}

	return nil
}

// ValidateElementID validates a user-supplied element ID.
// IDs travel back in submit payloads and may be interpolated into templates
// downstream, so control characters and whitespace are rejected.
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "element ID cannot be empty")
	}

	const maxIDLength = 256
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "element ID too long (max %d characters)", maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "element ID contains control characters")
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "element ID cannot contain whitespace")
		}
	}

	return nil
}

// ValidateTargetName validates a platform target name.
// Target names select validation profiles and delivery envelopes; they must
// be simple lowercase identifiers.
func ValidateTargetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidTarget, "target name cannot be empty")
	}

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return New(ErrCodeInvalidTarget, "target name contains invalid character %q", r)
		}
	}

	return nil
}

// ValidateVersion validates a card schema version string ("major.minor").
func ValidateVersion(version string) error {
	if version == "" {
		return New(ErrCodeInvalidInput, "version cannot be empty")
	}

	parts := strings.Split(version, ".")
	if len(parts) > 2 {
		return New(ErrCodeInvalidInput, "version must be major.minor: %q", version)
	}
	for _, part := range parts {
		if part == "" {
			return New(ErrCodeInvalidInput, "version has an empty component: %q", version)
		}
		for _, r := range part {
			if r < '0' || r > '9' {
				return New(ErrCodeInvalidInput, "version must be numeric: %q", version)
			}
		}
	}

	return nil
}
