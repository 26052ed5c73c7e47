package prompt

import (
	"fmt"
	"strings"

	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/catalog"
)

// SubjectConfig describes one subject in the builder state. Every field is
// either a template id or free text; empty fields are skipped.
type SubjectConfig struct {
	ID                string `json:"id"`
	AvatarID          string `json:"avatarId,omitempty"`
	AvatarName        string `json:"avatarName,omitempty"`
	AvatarDescription string `json:"avatarDescription,omitempty"`
	AvatarImageURL    string `json:"avatarImageUrl,omitempty"`
	Pose              string `json:"pose,omitempty"`
	Action            string `json:"action,omitempty"`
	Clothing          string `json:"clothing,omitempty"`
	Hair              string `json:"hair,omitempty"`
	Makeup            string `json:"makeup,omitempty"`
	Expression        string `json:"expression,omitempty"`
	CustomDescription string `json:"customDescription,omitempty"`
}

// BuilderState is the structured input the assembler turns into a single
// natural-language prompt.
type BuilderState struct {
	Location     string          `json:"location"`
	Lighting     string          `json:"lighting"`
	Camera       string          `json:"camera"`
	Style        string          `json:"style"`
	Subjects     []SubjectConfig `json:"subjects"`
	CustomPrompt string          `json:"customPrompt"`
}

// AvatarSelection is a reference-image choice extracted from the builder
// state: subjects that carry both an avatar id and an image URL.
type AvatarSelection struct {
	AvatarID string `json:"avatarId"`
	ImageURL string `json:"imageUrl"`
	Type     string `json:"type"`
}

// ReferenceSelections filters the state's subjects down to usable avatar
// references. The type is reported as "human" here; the builder state does
// not carry the avatar's stored type, and the orchestrator re-resolves it
// from the avatar record before dispatch.
func (s BuilderState) ReferenceSelections() []AvatarSelection {
	var out []AvatarSelection
	for _, subject := range s.Subjects {
		if subject.AvatarID == "" || subject.AvatarImageURL == "" {
			continue
		}
		out = append(out, AvatarSelection{
			AvatarID: subject.AvatarID,
			ImageURL: subject.AvatarImageURL,
			Type:     "human",
		})
	}
	return out
}

// Assembler turns builder states into prompts, resolving template ids
// against an injected catalog.
type Assembler struct {
	catalog *catalog.Catalog
}

func NewAssembler(c *catalog.Catalog) *Assembler {
	return &Assembler{catalog: c}
}

// Assemble produces the final prompt string. The ordering is fixed and
// carries semantic weight for the downstream model: style first, then
// subjects in list order, then location, lighting, camera, and the custom
// prompt verbatim at the end. An entirely empty state yields "".
func (a *Assembler) Assemble(state BuilderState) string {
	var parts []string

	if style := a.resolve(state.Style); style != "" {
		parts = append(parts, style)
	}

	for i, subject := range state.Subjects {
		if clause := a.subjectClause(subject, i); clause != "" {
			parts = append(parts, clause)
		}
	}

	if location := a.resolve(state.Location); location != "" {
		parts = append(parts, "in "+location)
	}
	if lighting := a.resolve(state.Lighting); lighting != "" {
		parts = append(parts, lighting)
	}
	if camera := a.resolve(state.Camera); camera != "" {
		parts = append(parts, camera)
	}
	if custom := strings.TrimSpace(state.CustomPrompt); custom != "" {
		parts = append(parts, custom)
	}

	return strings.Join(parts, ". ")
}

func (a *Assembler) subjectClause(subject SubjectConfig, index int) string {
	var parts []string

	// Avatar description gives the model the most context; fall back to the
	// avatar name, then to a positional placeholder.
	switch {
	case subject.AvatarDescription != "":
		parts = append(parts, subject.AvatarDescription)
	case subject.AvatarName != "":
		parts = append(parts, subject.AvatarName)
	default:
		parts = append(parts, fmt.Sprintf("Subject %d", index+1))
	}

	for _, value := range []string{subject.Pose, subject.Action, subject.Clothing, subject.Expression} {
		if resolved := a.resolve(value); resolved != "" {
			parts = append(parts, resolved)
		}
	}
	for _, literal := range []string{subject.Hair, subject.Makeup, subject.CustomDescription} {
		if literal != "" {
			parts = append(parts, literal)
		}
	}

	return strings.Join(parts, ", ")
}

// resolve maps a template id to its fragment, or passes free text through
// verbatim. This keeps the assembler tolerant of arbitrary user-typed values.
func (a *Assembler) resolve(value string) string {
	if value == "" {
		return ""
	}
	if fragment, ok := a.catalog.Resolve(value); ok {
		return fragment
	}
	return value
}
