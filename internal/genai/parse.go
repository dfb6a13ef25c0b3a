package genai

import (
	"regexp"
	"strings"
)

var (
	fenceRe  = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	arrayRe  = regexp.MustCompile(`(?s)\[.*\]`)
	objectRe = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractJSONArray pulls the outermost JSON array out of a model
// reply, tolerating code fences and surrounding prose. Empty result
// means no array was found.
func ExtractJSONArray(text string) string {
	return extract(text, arrayRe)
}

// ExtractJSONObject does the same for a JSON object.
func ExtractJSONObject(text string) string {
	return extract(text, objectRe)
}

func extract(text string, re *regexp.Regexp) string {
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		text = m[1]
	}
	return strings.TrimSpace(re.FindString(text))
}
