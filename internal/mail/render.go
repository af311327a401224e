package mail

import (
	"regexp"
	"strconv"
)

// Placeholders have the form {{key[i]}} where key names an entry in the
// custom map and i is a literal index into that entry's value list.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\[\s*(\d+)\s*\]\s*\}\}`)

// Render substitutes {{key[i]}} placeholders in template using the custom
// value lists. Unknown keys and out-of-range indices leave the placeholder
// text unchanged. The recipient position is accepted for call-site symmetry
// but substitution is driven by the literal index written in the placeholder,
// so every recipient of a batch sees the same rendered text.
func Render(template string, _ int, custom map[string][]string) string {

	if template == "" || len(custom) == 0 {
		return template
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {

		groups := placeholderPattern.FindStringSubmatch(match)

		values, ok := custom[groups[1]]

		if !ok {
			return match
		}

		idx, err := strconv.Atoi(groups[2])

		if err != nil || idx >= len(values) {
			return match
		}

		return values[idx]
	})
}
