package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"LAUFSCHUHE", "laufschuhe"},
		{"Größe", "größe"},
		{"FÜR", "für"},
		{"für", "für"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Laufschuhe  Damen ", "laufschuhe damen"},
		{"Laufschuhe\tDamen\n", "laufschuhe damen"},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Key(tt.input); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
