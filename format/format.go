// Package format holds the pure helpers used by the views to display GitHub data.
package format

import (
	"strconv"
	"strings"
	"time"
)

const (
	longDateLayout  = "January 2, 2006"
	shortDateLayout = "Jan 2, 2006"
)

// Number abbreviates large counters: 999 -> "999", 1500 -> "1.5K", 2300000 -> "2.3M"
func Number(n int) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.Itoa(n)
	}
}

// Date renders a timestamp as a long calendar date, e.g. "January 2, 2024"
func Date(t time.Time) string {
	return t.Format(longDateLayout)
}

// ShortDate renders a timestamp as "Jan 2, 2024"
func ShortDate(t time.Time) string {
	return t.Format(shortDateLayout)
}

// ParseDate parses an ISO-8601 (RFC 3339) timestamp and renders it with Date
func ParseDate(iso string) (string, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(iso))
	if err != nil {
		return "", err
	}

	return Date(t), nil
}

// BlogURL makes a profile blog entry clickable, GitHub stores it without scheme most of the time
func BlogURL(blog string) string {
	if strings.HasPrefix(blog, "http") {
		return blog
	}

	return "https://" + blog
}

var languageColors = map[string]string{
	"JavaScript": "lang-yellow",
	"TypeScript": "lang-blue",
	"Python":     "lang-green",
	"Java":       "lang-orange",
	"C++":        "lang-blue-dark",
	"C":          "lang-gray-dark",
	"C#":         "lang-purple",
	"Go":         "lang-cyan",
	"Rust":       "lang-orange-dark",
	"PHP":        "lang-indigo",
	"Ruby":       "lang-red",
	"Swift":      "lang-orange-light",
	"Kotlin":     "lang-purple-dark",
	"Dart":       "lang-blue-light",
	"HTML":       "lang-orange-light",
	"CSS":        "lang-blue-light",
	"Shell":      "lang-gray",
	"Vue":        "lang-green-light",
}

// LanguageColor returns the css class used for the language dot of a repository card
func LanguageColor(language string) string {
	if color, found := languageColors[language]; found {
		return color
	}

	return "lang-gray"
}
