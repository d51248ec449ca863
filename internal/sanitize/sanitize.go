package sanitize

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// HTML re-serializes a fragment through the sanitizer, dropping dangerous
// or malformed markup. ok is false when a non-blank input sanitizes to
// nothing, meaning the fragment carried no usable content at all.
func HTML(fragment string) (string, bool) {
	out := policy.Sanitize(fragment)
	if strings.TrimSpace(out) == "" && strings.TrimSpace(fragment) != "" {
		return "", false
	}
	return out, true
}

// CSS parses and re-serializes a stylesheet. The parser is lenient, so
// malformed input comes back normalized rather than rejected; only blank
// input or a hard parse failure yields the empty string. Best-effort, never
// an error.
func CSS(css string) string {
	if strings.TrimSpace(css) == "" {
		return ""
	}
	sheet, err := parser.Parse(css)
	if err != nil {
		return ""
	}
	return sheet.String()
}
