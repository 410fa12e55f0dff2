package main

import "testing"

func TestNormalizePhrase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "already clean",
			input: "abandon abandon about",
			want:  "abandon abandon about",
		},
		{
			name:  "trailing newline",
			input: "abandon abandon about\n",
			want:  "abandon abandon about",
		},
		{
			name:  "mixed whitespace",
			input: "  abandon\tabandon \n about ",
			want:  "abandon abandon about",
		},
		{
			name:  "uppercase input",
			input: "Abandon ABANDON About",
			want:  "abandon abandon about",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizePhrase(tt.input); got != tt.want {
				t.Errorf("normalizePhrase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
