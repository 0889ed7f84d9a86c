package repository

import "testing"

func TestMatchKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"john smith", "john smith"},
		{"  John   Smith ", "john smith"},
		{"MATH", "math"},
		{" Math ", "math"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := matchKey(tt.in); got != tt.want {
			t.Errorf("matchKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayForm(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"john smith", "John Smith"},
		{"  john   SMITH ", "John Smith"},
		{"math", "Math"},
		{" MATH ", "Math"},
	}

	for _, tt := range tests {
		if got := displayForm(tt.in); got != tt.want {
			t.Errorf("displayForm(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatchKeyCollapsesVariants(t *testing.T) {
	variants := []string{"john smith", "John Smith", "  JOHN   SMITH ", "john  Smith"}
	want := matchKey(variants[0])

	for _, v := range variants {
		if got := matchKey(v); got != want {
			t.Errorf("matchKey(%q) = %q, want %q", v, got, want)
		}
	}
}
