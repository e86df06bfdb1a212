package errors

import (
	"strings"
	"testing"
)

func TestValidateLabelID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"simple", "revenue", false},
		{"with dash", "axis-x-0", false},
		{"unicode", "étiquette", false},

		{"too long", strings.Repeat("a", 200), true},
		{"space", "two words", true},
		{"newline", "foo\nbar", true},
		{"control char", "foo\x01bar", true},
		{"markup", "a<b", true},
		{"quote", `a"b`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabelID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabelID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidLabel) {
				t.Errorf("ValidateLabelID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidLabel)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "labels.toml", false},
		{"nested", "docs/labels.yaml", false},
		{"absolute", "/tmp/labels.json", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 600), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAnchors(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string) error
		input   string
		wantErr bool
	}{
		{"vertical empty", ValidateVerticalAnchor, "", false},
		{"vertical end", ValidateVerticalAnchor, "end", false},
		{"vertical bad", ValidateVerticalAnchor, "baseline", true},
		{"text inherit", ValidateTextAnchor, "inherit", false},
		{"text bad", ValidateTextAnchor, "left", true},
		{"direction rtl", ValidateDirection, "rtl", false},
		{"direction bad", ValidateDirection, "up", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEventName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"lower", "onclick", false},
		{"camel", "onMouseOver", false},

		{"empty", "", true},
		{"prefix only", "on", true},
		{"no prefix", "click", true},
		{"attribute breakout", `x="1"><script>alert(1)</script><g a`, true},
		{"space", "on click", true},
		{"namespace", "xlink:href", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEventName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEventName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidLabel) {
				t.Errorf("ValidateEventName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidLabel)
			}
		})
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{"snake key", "font_size", "12px", false},
		{"camel key", "fontWeight", "bold", false},
		{"kebab key", "letter-spacing", "1px", false},
		{"font list", "font_family", "Helvetica, Arial, sans-serif", false},

		{"empty key", "", "x", true},
		{"key with colon", "fill:red", "x", true},
		{"key with space", "font size", "x", true},
		{"extra declaration", "fill", "red; display: none", true},
		{"block", "fill", "red}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStyleKey(tt.key)
			if err == nil {
				err = ValidateStyleValue(tt.key, tt.value)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("validate %q=%q error = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
			}
		})
	}
}
