package services

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Editorial", "editorial"},
		{"spaces collapse", "Fashion  Campaign", "fashion-campaign"},
		{"mixed whitespace", "New\tYork \n Shoot", "new-york-shoot"},
		{"punctuation stripped", "Shoot #1 (Test)!", "shoot-1-test"},
		{"accents stripped", "Café Motion", "caf-motion"},
		{"leading and trailing space", "  Beauty  ", "beauty"},
		{"digits kept", "Summer 2024", "summer-2024"},
		{"hyphen kept", "re-touch", "re-touch"},
		{"only punctuation", "!!!", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.in); got != tc.want {
				t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
