package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/prompt"
)

// PromptAssemble turns a builder state into the final prompt string without
// starting a generation, so clients can preview what will be sent.
func (a *App) PromptAssemble(w http.ResponseWriter, r *http.Request) {
	var state prompt.BuilderState
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	assembled := a.Assembler.Assemble(state)
	a.json(w, http.StatusOK, map[string]any{
		"prompt":     assembled,
		"references": state.ReferenceSelections(),
	})
}
