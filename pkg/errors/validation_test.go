package errors

import (
	"testing"
)

func TestValidateStateID(t *testing.T) {
	tests := []struct {
		name    string
		input   int64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 42, false},
		{"max", MaxStateID, false},
		{"negative", -1, true},
		{"too large", MaxStateID + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStateID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStateID(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateWord(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"simple", "abba", false},
		{"with space", "a b", false},
		{"unknown symbols", "xyz", false},

		{"newline", "a\nb", true},
		{"null byte", "a\x00", true},
		{"invalid utf-8", "a\xff", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWord(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWord(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
