package store

import (
	"errors"
	"testing"
)

func TestValidateReservedName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"cart", false},
		{"Index", false}, // case-sensitive
		{"index", true},
		{"myindex", true},
		{"indexer", true},
		{"cart.index", true},
		{"", false},
	}

	for _, tt := range tests {
		err := ValidateReservedName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateReservedName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrReservedName) {
			t.Errorf("ValidateReservedName(%q) = %v, want ErrReservedName", tt.name, err)
		}
	}
}

func TestValidateNoDot(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"cart", false},
		{"cart.v2", true},
		{".hidden", true},
		{"trailing.", true},
		{"kebab-case", false},
		{"snake_case", false},
	}

	for _, tt := range tests {
		err := ValidateNoDot(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateNoDot(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidName) {
			t.Errorf("ValidateNoDot(%q) = %v, want ErrInvalidName", tt.name, err)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range Kinds() {
		k, err := ParseKind(s)
		if err != nil || string(k) != s {
			t.Errorf("ParseKind(%q) = %q, %v", s, k, err)
		}
	}

	for _, s := range []string{"", "Option", "composition", "setup "} {
		if _, err := ParseKind(s); !errors.Is(err, ErrUnknownKind) {
			t.Errorf("ParseKind(%q) error = %v, want ErrUnknownKind", s, err)
		}
	}
}
