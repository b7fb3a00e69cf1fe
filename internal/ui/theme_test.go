package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 {
		t.Fatalf("ThemeNames() returned %d names, want 2", len(names))
	}
	if names[0] != "Dracula" || names[1] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Dracula Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Dracula"); got != "Slate" {
		t.Fatalf("NextTheme(Dracula) = %q, want Slate", got)
	}
	if got := NextTheme("Slate"); got != "Dracula" {
		t.Fatalf("NextTheme(Slate) = %q, want Dracula", got)
	}
	if got := NextTheme("Unknown"); got != "Dracula" {
		t.Fatalf("NextTheme(Unknown) = %q, want Dracula", got)
	}
}

func TestGetTheme_FallsBackToDracula(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q, want Slate", got)
	}
	if got := GetTheme("Unknown").Name; got != "Dracula" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Dracula", got)
	}
}

func TestRatingTier(t *testing.T) {
	cases := []struct {
		rating float64
		want   string
	}{
		{9.0, "high"},
		{8.0, "high"},
		{7.9, "mid"},
		{6.5, "mid"},
		{6.4, "low"},
		{0, "low"},
	}
	for _, tc := range cases {
		if got := ratingTier(tc.rating); got != tc.want {
			t.Fatalf("ratingTier(%v) = %q, want %q", tc.rating, got, tc.want)
		}
	}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, tier := range []string{"high", "mid", "low"} {
			if th.RatingColors[tier] == "" {
				t.Fatalf("%s theme has no %s rating color", name, tier)
			}
		}
	}
}
