package lookup

import (
	"regexp"
	"strings"
)

// Variants returns the barcode forms tried against the music catalog, in
// order: the literal input, the input left-padded with zeros to 13 digits
// (EAN-13), and the input left-padded to 12 digits (UPC-A). The literal form
// goes first so an already-canonical barcode matches without guessing a
// check-digit convention.
func Variants(barcode string) []string {
	return []string{
		barcode,
		padLeft(barcode, 13),
		padLeft(barcode, 12),
	}
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

var (
	titleYearPattern    = regexp.MustCompile(`^(.+?)\s*[\(\[](\d{4})[\)\]]`)
	formatSuffixPattern = regexp.MustCompile(`(?i)\s*[-–]\s*(DVD|Blu-ray|Blu Ray).*$`)
	bracketTagPattern   = regexp.MustCompile(`\s*\[.*?\]\s*`)
)

// ExtractTitleYear pulls a movie title and optional release year out of a
// product listing title such as "Inception (2010) [Blu-ray]". When no
// trailing four-digit year is present the raw title is cleaned up instead:
// physical-format suffixes and bracketed tags are stripped.
func ExtractTitleYear(raw string) (title, year string) {
	if m := titleYearPattern.FindStringSubmatch(raw); m != nil {
		title = strings.TrimSpace(formatSuffixPattern.ReplaceAllString(m[1], ""))
		year = m[2]
		return title, year
	}

	title = formatSuffixPattern.ReplaceAllString(raw, "")
	title = bracketTagPattern.ReplaceAllString(title, "")
	return strings.TrimSpace(title), ""
}

// usToBBFC maps the US MPA rating vocabulary returned by the movie catalog
// onto the BBFC classifications used by the collection. The mapping is
// approximate; the UI discloses that the rating may need manual verification.
var usToBBFC = map[string]string{
	"G":     "U",
	"PG":    "PG",
	"PG-13": "12A",
	"R":     "15",
	"NC-17": "18",
}

// MapRating converts a US content rating to a BBFC classification.
// Unknown or unavailable ratings resolve to "Unrated".
func MapRating(us string) string {
	if mapped, ok := usToBBFC[us]; ok {
		return mapped
	}
	return "Unrated"
}
