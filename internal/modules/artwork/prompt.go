package artwork

import "fmt"

// The style lock for every generated frame. Kept consistent for brand look.
const imagePromptTemplate = `Create a single, scroll-stopping dream image based on the user nightmare.

STYLE (must follow):
- cinematic surreal horror, dreamlike, unsettling, NOT gory
- desaturated green/teal color grade (“sickly emerald haze”), low saturation
- heavy atmosphere: fog/mist, volumetric light beams, dust motes
- subtle film grain + vignette + faint lens haze
- realistic photographic look, high detail, moody contrast
- liminal spaces, uncanny scale, quiet dread
- no blood, no gore, no exposed wounds, no body horror

COMPOSITION:
- ONE image only (not a collage), vertical framing
- clear focal point and readable silhouette
- minimal text or none (no captions, no typography)
- avoid jump-scare comedy; keep it grounded and eerie

CONTENT RULES:
- interpret the nightmare symbolically, not literally
- keep it plausible in dream logic: wrong-house familiarity, endless corridors, forest paths, stairwells, waterline light, cracked ground, etc.
- if the nightmare mentions violence or injury, imply it abstractly via symbolism, shadows, environment, or impossible geometry (no explicit harm)

Add “uneasy stillness” and “an implied presence” (subtle, not explicit) to increase dread.

Now render the scene.
Nightmare: “%s”`

// BuildImagePrompt embeds the (possibly softened) dream text into the fixed
// visual-style template.
func BuildImagePrompt(dreamText string) string {
	return fmt.Sprintf(imagePromptTemplate, dreamText)
}
