package normalize

import "testing"

func TestSpaces(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"pan", "pan"},
		{"  pan  ", "pan"},
		{"pan \t de   molde", "pan de molde"},
		{"\n dulces \n", "dulces"},
	}

	for _, tt := range tests {
		if got := Spaces(tt.in); got != tt.want {
			t.Errorf("Spaces(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrettyCategoryName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  dULceS  ", "Dulces"},
		{"dulces", "Dulces"},
		{"PAN", "Pan"},
		{"pan   de molde", "Pan de molde"},
		{"", ""},
		{"   ", ""},
		{"ñoquis", "Ñoquis"},
	}

	for _, tt := range tests {
		if got := PrettyCategoryName(tt.in); got != tt.want {
			t.Errorf("PrettyCategoryName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCategoryKey(t *testing.T) {
	// "Dulces" and "dulces" must collapse to the same key.
	if CategoryKey("Dulces") != CategoryKey("dulces") {
		t.Errorf("keys differ: %q vs %q", CategoryKey("Dulces"), CategoryKey("dulces"))
	}
	if got := CategoryKey("  DULCES  "); got != "dulces" {
		t.Errorf("CategoryKey = %q, want %q", got, "dulces")
	}
	if got := CategoryKey("  "); got != "" {
		t.Errorf("CategoryKey of blank = %q, want empty", got)
	}
}

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"pan francés", "Pan francés"},
		{"  torta DE chocolate ", "Torta DE chocolate"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CapitalizeFirst(tt.in); got != tt.want {
			t.Errorf("CapitalizeFirst(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
