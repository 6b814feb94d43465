package util

import "testing"

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{name: "korean mobile without prefix", raw: "01012345678", expected: "+821012345678"},
		{name: "korean mobile with hyphens", raw: "010-1234-5678", expected: "+821012345678"},
		{name: "already e164", raw: "+821012345678", expected: "+821012345678"},
		{name: "foreign number with prefix", raw: "+14155552671", expected: "+14155552671"},
		{name: "empty input", raw: "", wantErr: true},
		{name: "garbage input", raw: "not-a-number", wantErr: true},
		{name: "too short", raw: "0101234", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NormalizePhone(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizePhone(%q) expected error, got %q", tt.raw, got)
				}

				return
			}
			if err != nil {
				t.Fatalf("NormalizePhone(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.expected {
				t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestNormalizePhoneOptional(t *testing.T) {
	t.Parallel()

	got, err := NormalizePhoneOptional(nil)
	if err != nil || got != nil {
		t.Fatalf("NormalizePhoneOptional(nil) = %v, %v; want nil, nil", got, err)
	}

	empty := ""
	got, err = NormalizePhoneOptional(&empty)
	if err != nil || got != nil {
		t.Fatalf("NormalizePhoneOptional(empty) = %v, %v; want nil, nil", got, err)
	}

	raw := "010-1234-5678"
	got, err = NormalizePhoneOptional(&raw)
	if err != nil {
		t.Fatalf("NormalizePhoneOptional(%q) unexpected error: %v", raw, err)
	}
	if got == nil || *got != "+821012345678" {
		t.Fatalf("NormalizePhoneOptional(%q) = %v, want +821012345678", raw, got)
	}
}
