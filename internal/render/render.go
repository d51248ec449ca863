package render

import (
	"io"
	"regexp"
	"strings"

	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{{"
	endTag   = "}}"
)

var fieldRe = regexp.MustCompile(`\{\{(.*?)\}\}`)

// Render fills {{field}} placeholders in text from data. Unknown
// placeholders render empty; a template that cannot be parsed at all
// renders as the empty string.
func Render(text string, data map[string]string) string {
	t, err := fasttemplate.NewTemplate(text, startTag, endTag)
	if err != nil {
		return ""
	}
	return t.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		return w.Write([]byte(data[strings.TrimSpace(tag)]))
	})
}

// Fields returns the distinct trimmed placeholder names across all faces,
// in first-seen order.
func Fields(faces []string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, face := range faces {
		for _, m := range fieldRe.FindAllStringSubmatch(face, -1) {
			name := strings.TrimSpace(m[1])
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}
