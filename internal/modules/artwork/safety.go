package artwork

import "strings"

// Terms that push the rendered scene from symbolic into graphic territory.
// A match never deletes the user's text; it only appends the rendering note.
var goreTerms = []string{
	"blood",
	"bleed",
	"gore",
	"gory",
	"sever",
	"decap",
	"dismember",
	"intestine",
	"organs",
	"eyeball",
	"teeth",
	"tooth",
	"pull",
	"rip",
	"tear",
	"cut",
	"knife",
	"stab",
	"murder",
	"corpse",
	"dead body",
	"skull",
	"bone",
	"vomit",
	"self harm",
	"suicide",
}

const safetyNote = "\n\n[NOTE: Render this symbolically and abstractly. Do NOT show blood, wounds, injury, or body horror. Imply dread through environment, shadows, surreal geometry, reflections, mist, and atmosphere.]"

// SoftenDream defangs gore-adjacent dreams into dream symbolism: if any
// listed term appears (case-insensitive substring match), the symbolic
// rendering note is appended to the otherwise untouched text.
func SoftenDream(dream string) string {
	text := strings.TrimSpace(dream)
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)
	for _, term := range goreTerms {
		if strings.Contains(lower, term) {
			return text + safetyNote
		}
	}
	return text
}
