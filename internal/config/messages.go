package config

import "strings"

// RenderMessage substitutes {{name}} placeholders in a commit message
// template from props. Substitution is a literal string replace; a
// placeholder with no matching property is left verbatim.
func RenderMessage(template string, props map[string]string) string {
	out := template
	for name, value := range props {
		out = strings.ReplaceAll(out, "{{"+name+"}}", value)
	}
	return out
}
