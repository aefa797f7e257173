package parser

import (
	"regexp"
	"strings"
)

var tagRegex = regexp.MustCompile(`#([a-zA-Z0-9_,-]+)`)
var spaceRegex = regexp.MustCompile(`\s+`)

// ExtractTags pulls inline tags out of a session description using natural
// syntax: "Fix login flow #backend #api" or "#backend,api". It returns the
// description with the tag markers removed and the extracted tags in order
// of appearance.
func ExtractTags(input string) (string, []string) {
	var tags []string

	matches := tagRegex.FindAllStringSubmatch(input, -1)
	for _, match := range matches {
		if len(match) < 2 {
			continue
		}
		// Split by comma in case of #tag1,tag2
		for _, tag := range strings.Split(match[1], ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	cleaned := tagRegex.ReplaceAllString(input, "")
	cleaned = spaceRegex.ReplaceAllString(cleaned, " ")

	return strings.TrimSpace(cleaned), tags
}
