// Package template renders ticket names and descriptions from template
// strings with {{ variable.path }} placeholders against a nested context.
package template

import (
	"fmt"
	"strings"

	"github.com/libdough/openvolunteer/internal/shared/errors"
)

// Renderer substitutes {{ dotted.path }} placeholders with values from a
// nested map context. Missing paths render as an empty string; unbalanced
// braces are a render error so a broken template fails ticket generation
// instead of producing garbled text.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render substitutes every placeholder in text using ctx. The result is
// stripped of leading and trailing whitespace.
func (r *Renderer) Render(text string, ctx map[string]any) (string, error) {
	var out strings.Builder
	rest := text
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			if strings.Contains(rest, "}}") {
				return "", errors.NewTemplateRenderError(fmt.Sprintf("unbalanced braces in template: %q", text))
			}
			out.WriteString(rest)
			return strings.TrimSpace(out.String()), nil
		}

		out.WriteString(rest[:open])
		rest = rest[open+2:]

		closing := strings.Index(rest, "}}")
		if closing < 0 {
			return "", errors.NewTemplateRenderError(fmt.Sprintf("unbalanced braces in template: %q", text))
		}

		path := strings.TrimSpace(rest[:closing])
		rest = rest[closing+2:]

		out.WriteString(lookup(ctx, path))
	}
}

// lookup walks a dotted path through nested maps. Any miss along the way
// yields an empty string.
func lookup(ctx map[string]any, path string) string {
	if path == "" {
		return ""
	}

	var current any = ctx
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return ""
		}
		current, ok = m[part]
		if !ok {
			return ""
		}
	}

	switch v := current.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any:
		// A placeholder must resolve to a leaf.
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
