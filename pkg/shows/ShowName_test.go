package shows

import "testing"

func TestFormatShowName(t *testing.T) {
	tests := []struct {
		name string
		slug string
		want string
	}{
		{"date-based slug", "emo-2024-03-15", "Emo - March 15, 2024"},
		{"abbreviation with edition and descriptor", "llnm1-janelle", "Louisville Loves Nu-Metal 1 - Janelle"},
		{"descriptor 'photos' is suppressed", "llnm1-photos", "Louisville Loves Nu-Metal 1"},
		{"abbreviation without descriptor", "lle2", "Louisville Loves Emo 2"},
		{"llp events", "llp3-vendors", "LLP Events 3 - Vendors"},
		{"fallback capitalization", "random-name", "Random Name"},
		{"single word", "halloween", "Halloween"},
		{"four parts but not a date", "some-band-live-set", "Some Band Live Set"},
		{"invalid month falls through to fallback", "emo-2024-13-15", "Emo 2024 13 15"},
		{"normalized date is rejected", "emo-2024-02-30", "Emo 2024 02 30"},
		{"empty slug", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatShowName(tt.slug)

			if got != tt.want {
				t.Errorf("FormatShowName(%q) = %q, want %q", tt.slug, got, tt.want)
			}
		})
	}
}

func TestFormatShowNameIsDeterministic(t *testing.T) {
	slugs := []string{"emo-2024-03-15", "llnm1-janelle", "random-name", "lle2-photos"}

	for _, slug := range slugs {
		first := FormatShowName(slug)
		second := FormatShowName(slug)

		if first != second {
			t.Errorf("FormatShowName(%q) not deterministic: %q != %q", slug, first, second)
		}
	}
}
