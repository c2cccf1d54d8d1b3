package palette

import (
	"github.com/example/color-analyzer/internal/undertone"
)

type outfitKey struct {
	tone      undertone.Undertone
	formality Formality
	style     Style
}

var outfits = map[outfitKey][]string{
	{undertone.Warm, FormalityCasual, StyleSubtle}: {
		"Olive green t-shirt with beige chinos",
		"Terracotta sweater with brown jeans",
		"Peach blouse with warm brown pants",
	},
	{undertone.Warm, FormalityCasual, StyleBold}: {
		"Burnt orange hoodie with dark jeans",
		"Golden yellow shirt with rust-colored jacket",
		"Rich red top with forest green cardigan",
	},
	{undertone.Warm, FormalityProfessional, StyleSubtle}: {
		"Warm beige blazer with olive dress pants",
		"Terracotta button-up with brown suit",
		"Peach blouse with neutral skirt and warm brown accessories",
	},
	{undertone.Warm, FormalityProfessional, StyleBold}: {
		"Golden yellow blouse with navy suit",
		"Burnt orange dress shirt with charcoal blazer",
		"Rich red suit jacket with amber accessories",
	},
	{undertone.Cool, FormalityCasual, StyleSubtle}: {
		"Powder blue t-shirt with cool gray jeans",
		"Lavender sweater with silver accessories",
		"Soft pink top with mint green cardigan",
	},
	{undertone.Cool, FormalityCasual, StyleBold}: {
		"Royal blue hoodie with black jeans",
		"Magenta shirt with purple jacket",
		"Emerald green top with navy pants",
	},
	{undertone.Cool, FormalityProfessional, StyleSubtle}: {
		"Powder blue blouse with cool gray suit",
		"Lavender dress shirt with silver accessories",
		"Soft pink blazer with navy skirt",
	},
	{undertone.Cool, FormalityProfessional, StyleBold}: {
		"Royal blue suit with white shirt",
		"Purple dress with magenta accessories",
		"Emerald blazer with navy dress pants",
	},
	{undertone.Neutral, FormalityCasual, StyleSubtle}: {
		"Soft taupe sweater with sage green pants",
		"Dusty rose top with warm gray jeans",
		"Cream blouse with mauve cardigan",
	},
	{undertone.Neutral, FormalityCasual, StyleBold}: {
		"Teal shirt with burgundy jacket",
		"Deep purple top with olive pants",
		"Jade green sweater with crimson accessories",
	},
	{undertone.Neutral, FormalityProfessional, StyleSubtle}: {
		"Soft taupe suit with cream blouse",
		"Sage blazer with dusty rose accessories",
		"Warm gray suit with mauve shirt",
	},
	{undertone.Neutral, FormalityProfessional, StyleBold}: {
		"Teal blazer with burgundy dress pants",
		"Deep purple suit with jade accessories",
		"Olive suit with crimson blouse",
	},
}

var genericOutfits = []string{
	"Classic white shirt with dark pants",
	"Navy blazer with neutral bottoms",
	"Black dress with colorful accessories",
}

// OutfitsFor returns the three outfit suggestions for the given undertone,
// style, and formality. Any unknown selector yields the generic fallback
// list. The returned slice is a copy and safe for the caller to modify.
func OutfitsFor(tone undertone.Undertone, style Style, formality Formality) []string {
	suggestions, ok := outfits[outfitKey{tone: tone, formality: formality, style: style}]
	if !ok {
		suggestions = genericOutfits
	}
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out
}
