package sanitizer

import (
	"strings"
	"unicode"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// SanitizeText is applied to every appointment field. Values are otherwise
// stored as typed: dates, times and phone numbers are not reformatted.
func SanitizeText(input string) string {
	p := Pipeline{
		stripControl,
		TrimAndNormalize,
	}
	return p.Apply(input)
}

// SanitizeSearchTerm prepares an admin search query.
func SanitizeSearchTerm(input string) string {
	return SanitizeText(input)
}
