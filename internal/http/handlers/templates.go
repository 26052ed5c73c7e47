package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/catalog"
)

// TemplatesList returns every template grouped by category, in display order.
func (a *App) TemplatesList(w http.ResponseWriter, r *http.Request) {
	categories := make([]map[string]any, 0, len(catalog.Categories()))
	for _, category := range catalog.Categories() {
		categories = append(categories, map[string]any{
			"category":  category,
			"templates": a.Catalog.ByCategory(category),
		})
	}
	a.json(w, http.StatusOK, map[string]any{"categories": categories})
}

// TemplatesByCategory returns the templates of a single category.
func (a *App) TemplatesByCategory(w http.ResponseWriter, r *http.Request) {
	category := catalog.Category(chi.URLParam(r, "category"))
	known := false
	for _, c := range catalog.Categories() {
		if c == category {
			known = true
			break
		}
	}
	if !known {
		a.error(w, http.StatusNotFound, "not_found", "unknown template category")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"category":  category,
		"templates": a.Catalog.ByCategory(category),
	})
}
