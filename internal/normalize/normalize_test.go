package normalize

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "CHATEAU MARGAUX", "chateau margaux"},
		{"keeps decimal point", "12.5% ALC./VOL.", "12.5% alc/vol"},
		{"strips trailing period", "Co.", "co"},
		{"strips leading period", ".75", "75"},
		{"strips punctuation", "St. Helena, CA (Napa)", "st helena ca napa"},
		{"collapses whitespace", "  Old\t Vine \n Zin  ", "old vine zin"},
		{"strips hyphen", "non-vintage", "nonvintage"},
		{"strips quotes", `"Reserve" Blanc d'Or`, "reserve blanc dor"},
		{"empty", "", ""},
		{"only punctuation", "...,;:", ""},
		{"period between digit and letter", "12.a", "12a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.in); got != tt.want {
				t.Errorf("String(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStringIdempotent(t *testing.T) {
	inputs := []string{
		"CHATEAU MARGAUX",
		"12.5% Alc./Vol.",
		"  spaced   out  ",
		"GOVERNMENT WARNING: (1) According to the Surgeon General",
	}
	for _, in := range inputs {
		once := String(in)
		if twice := String(once); twice != once {
			t.Errorf("String not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestFoldDiacritics(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Rosé", "Rose"},
		{"Château Lafite", "Chateau Lafite"},
		{"Müller-Thurgau", "Muller-Thurgau"},
		{"plain ascii", "plain ascii"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FoldDiacritics(tt.in); got != tt.want {
			t.Errorf("FoldDiacritics(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
