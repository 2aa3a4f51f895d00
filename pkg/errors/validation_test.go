package errors

import (
	"strings"
	"testing"
)

func TestValidateWebhookURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid https", "https://outlook.office.com/webhook/abc", false},
		{"valid http", "http://localhost:8080/hook", false},
		{"valid with query", "https://example.com/hook?token=x", false},

		{"empty", "", true},
		{"no scheme", "outlook.office.com/webhook", true},
		{"ftp scheme", "ftp://example.com/hook", true},
		{"scheme only", "https://", true},
		{"not a url", "https://exa mple.com/%zz", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWebhookURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWebhookURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateElementID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "name", false},
		{"valid with dash", "user-email", false},
		{"valid with underscore", "form_field_1", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"space", "user name", true},
		{"tab", "user\tname", true},
		{"control char", "user\x01name", true},
		{"newline", "user\nname", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateElementID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateElementID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTargetName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid teams", "teams", false},
		{"valid with dash", "teams-gov", false},
		{"valid with digits", "slack2", false},

		{"empty", "", true},
		{"uppercase", "Teams", true},
		{"space", "ms teams", true},
		{"slash", "teams/webhook", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTargetName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTargetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid major.minor", "1.5", false},
		{"valid major only", "2", false},

		{"empty", "", true},
		{"three components", "1.5.0", true},
		{"trailing dot", "1.", true},
		{"non-numeric", "v1.5", true},
		{"negative", "-1.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVersion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVersion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
