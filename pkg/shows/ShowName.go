package shows

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

/*
Show slugs come straight from storage folder names. Three naming styles
are in use:

  - "emo-2024-03-15" (type plus show date)
  - "llnm1-janelle" (series abbreviation, edition, descriptor)
  - anything else, which is just prettied up
*/

var showAbbreviations = map[string]string{
	"llnm": "Louisville Loves Nu-Metal",
	"lle":  "Louisville Loves Emo",
	"llp":  "LLP Events",
}

var abbreviationPattern = regexp.MustCompile(`(?i)^(llnm|lle|llp)(\d+)?(?:-(.+))?`)

/*
FormatShowName turns a storage folder slug into a display name. It
never fails; a slug that matches no known style falls back to
capitalized, space-separated words.
*/
func FormatShowName(slug string) string {
	parts := strings.Split(slug, "-")

	if len(parts) >= 4 {
		if showDate, ok := parseShowDate(parts[1], parts[2], parts[3]); ok {
			return fmt.Sprintf("%s - %s", capitalize(parts[0]), showDate.Format("January 2, 2006"))
		}
	}

	if match := abbreviationPattern.FindStringSubmatch(slug); match != nil {
		name, ok := showAbbreviations[strings.ToLower(match[1])]

		if ok {
			if edition := match[2]; edition != "" {
				name += " " + edition
			}

			if descriptor := match[3]; descriptor != "" && descriptor != "photos" {
				name += " - " + capitalize(descriptor)
			}

			return name
		}
	}

	words := []string{}

	for _, word := range parts {
		words = append(words, capitalize(word))
	}

	return strings.Join(words, " ")
}

/*
parseShowDate validates a year/month/day triplet. time.Date normalizes
out-of-range values, so the result is compared back against the inputs
to reject things like month 13.
*/
func parseShowDate(year, month, day string) (time.Time, bool) {
	var (
		err error
		y   int
		m   int
		d   int
	)

	if y, err = strconv.Atoi(year); err != nil {
		return time.Time{}, false
	}

	if m, err = strconv.Atoi(month); err != nil {
		return time.Time{}, false
	}

	if d, err = strconv.Atoi(day); err != nil {
		return time.Time{}, false
	}

	result := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)

	if result.Year() != y || int(result.Month()) != m || result.Day() != d {
		return time.Time{}, false
	}

	return result, true
}

func capitalize(word string) string {
	if word == "" {
		return word
	}

	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
