package utils

import (
	"fmt"
	"html/template"
	"strings"
)

// ItalicFirst wraps the first word of a title in an <i> tag. The input is
// escaped before markup is added, so it is safe to emit as HTML.
func ItalicFirst(value string) template.HTML {
	escaped := template.HTMLEscapeString(value)
	parts := strings.Fields(escaped)
	if len(parts) <= 1 {
		return template.HTML(italify(escaped))
	}
	return template.HTML(italify(parts[0]) + " " + strings.Join(parts[1:], " "))
}

func italify(value string) string {
	return fmt.Sprintf("<i>%s</i>", value)
}
