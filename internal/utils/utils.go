package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// GenerateSlug generates a URL- and filename-friendly slug from a given string.
// Used to build export filenames from free-text context labels.
func GenerateSlug(input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("no input string supplied to GenerateSlug")
	}

	normalized := norm.NFD.String(input)

	withoutDiacritics, _, err := transform.String(runes.Remove(runes.In(unicode.Mn)), normalized)
	if err != nil {
		return "", fmt.Errorf("error creating slug: %v", err)
	}

	lowerCase := strings.ToLower(withoutDiacritics)

	reg := regexp.MustCompile(`[^a-z0-9\- ]+`) // Include space in the character set to handle it separately
	hyphenated := reg.ReplaceAllString(lowerCase, "-")

	spaceReg := regexp.MustCompile(`[ ]+`)
	hyphenated = spaceReg.ReplaceAllString(hyphenated, "-")

	trimmed := strings.Trim(hyphenated, "-")

	return trimmed, nil
}

// ExportFilename builds the timestamped name for a CSV export download:
// {context}_{dataType}_{YYYY-MM-DD}.csv
func ExportFilename(context, dataType string, now time.Time) string {
	contextSlug, err := GenerateSlug(context)
	if err != nil {
		contextSlug = "export"
	}
	dataTypeSlug, err := GenerateSlug(dataType)
	if err != nil {
		dataTypeSlug = "data"
	}
	return fmt.Sprintf("%s_%s_%s.csv", contextSlug, dataTypeSlug, now.Format("2006-01-02"))
}
