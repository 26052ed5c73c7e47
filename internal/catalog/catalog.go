package catalog

import (
	"strings"
)

// Category identifies a group of prompt templates. IDs are namespaced by
// convention as "<category>-<slug>", so they never collide across categories.
type Category string

const (
	CategoryStyle      Category = "style"
	CategoryLocation   Category = "location"
	CategoryLighting   Category = "lighting"
	CategoryCamera     Category = "camera"
	CategoryPose       Category = "pose"
	CategoryAction     Category = "action"
	CategoryClothing   Category = "clothing"
	CategoryExpression Category = "expression"
)

// Categories lists every template category in display order.
func Categories() []Category {
	return []Category{
		CategoryStyle,
		CategoryLocation,
		CategoryLighting,
		CategoryCamera,
		CategoryPose,
		CategoryAction,
		CategoryClothing,
		CategoryExpression,
	}
}

// Template is a named, pre-authored fragment of prompt text selectable in
// place of free-text input.
type Template struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	PromptFragment string `json:"promptFragment"`
}

// Catalog is an immutable registry of templates, grouped by category and
// indexed by id. It is built once at construction and never mutated, so it is
// safe for concurrent use.
type Catalog struct {
	byCategory map[Category][]Template
	byID       map[string]Template
}

// New builds a catalog from per-category template sets.
func New(sets map[Category][]Template) *Catalog {
	c := &Catalog{
		byCategory: make(map[Category][]Template, len(sets)),
		byID:       make(map[string]Template),
	}
	for category, templates := range sets {
		copied := make([]Template, len(templates))
		copy(copied, templates)
		c.byCategory[category] = copied
		for _, t := range copied {
			c.byID[t.ID] = t
		}
	}
	return c
}

// Default returns the catalog built from the bundled template data.
func Default() *Catalog {
	return New(defaultTemplates)
}

// Resolve returns the prompt fragment for a known template id. The second
// return is false when the identifier is not a template id, in which case the
// caller must treat the value as free text.
func (c *Catalog) Resolve(id string) (string, bool) {
	t, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return "", false
	}
	return t.PromptFragment, true
}

// Lookup returns the full template for a known id.
func (c *Catalog) Lookup(id string) (Template, bool) {
	t, ok := c.byID[strings.TrimSpace(id)]
	return t, ok
}

// ByCategory returns the templates registered under the given category.
func (c *Catalog) ByCategory(category Category) []Template {
	templates := c.byCategory[category]
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// Len reports the total number of registered templates.
func (c *Catalog) Len() int {
	return len(c.byID)
}
