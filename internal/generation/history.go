package generation

import (
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/providers/genai"
)

// providerHistory maps persisted turns onto the provider's conversation
// shape. Prior turns are sent text only; historical images carry provider
// metadata that is not persisted, so only the selected reference travels on
// the current turn.
func providerHistory(entries []HistoryEntry) []genai.HistoryTurn {
	if len(entries) == 0 {
		return nil
	}
	turns := make([]genai.HistoryTurn, 0, len(entries))
	for _, entry := range entries {
		turns = append(turns, genai.HistoryTurn{
			Role:    entry.Role,
			Content: entry.Content,
		})
	}
	return turns
}

// refinementReference picks the image a refinement edits: the caller's
// selection when it names a stored image, otherwise the first image. The
// caller guarantees at least one image exists.
func refinementReference(images []GeneratedImage, selectedID string) genai.ReferenceImage {
	chosen := images[0]
	if selectedID != "" {
		for _, img := range images {
			if img.ID == selectedID {
				chosen = img
				break
			}
		}
	}
	return genai.ReferenceImage{
		ImageURL: chosen.ImageURL,
		Kind:     genai.ReferenceHuman,
		Name:     "previous generation",
	}
}

func providerReferences(refs []Reference) []genai.ReferenceImage {
	if len(refs) == 0 {
		return nil
	}
	out := make([]genai.ReferenceImage, 0, len(refs))
	for _, ref := range refs {
		kind := genai.ReferenceHuman
		if ref.Type == AvatarObject {
			kind = genai.ReferenceObject
		}
		out = append(out, genai.ReferenceImage{
			ImageURL: ref.ImageURL,
			Kind:     kind,
			Name:     ref.Name,
		})
	}
	return out
}
