package model

import (
	"regexp"
	"strings"
)

var contentSeparatorRe = regexp.MustCompile(`\n|——|—|--`)

// SplitContent splits task content into a title and a description.
// The title is the first non-empty segment before a newline or dash
// separator. The description is the rest joined by newlines, "" when empty.
func SplitContent(text string) (title, description string) {
	parts := contentSeparatorRe.Split(strings.ReplaceAll(text, "\r\n", "\n"), -1)

	rest := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if title == "" {
			title = part
			continue
		}
		rest = append(rest, part)
	}
	return title, strings.Join(rest, "\n")
}

// JoinContent is the inverse of SplitContent for storage.
func JoinContent(title, description string) string {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	switch {
	case description == "":
		return title
	case title == "":
		return description
	default:
		return title + "\n" + description
	}
}

// NormalizeCategory trims the category and defaults blanks to DefaultCategory.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultCategory
	}
	return category
}
