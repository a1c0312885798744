package render

// Output texts in English.
const (
	resultTitle   = "--- Estimated daily needs ---"
	profileFmt    = "Weight: %s kg | Height: %s cm | Age: %d | Sex: %s\n"
	leanMassFmt   = "Body fat: %s%% -> lean body mass (approx.): %.1f kg\n"
	userNotesFmt  = "Your notes: %s\n"
	bmrFmt        = "BMR (resting burn): %.0f kcal/day\n"
	tdeeFmt       = "TDEE (after activity and goal): %.0f kcal/day\n"
	macrosTitle   = "Macronutrients (approx.):"
	proteinFmt    = " • Protein: %.1f g/day  (~%s g/kg)\n"
	fatFmt        = " • Fat: %.1f g/day  (~30%% of calories)\n"
	carbsFmt      = " • Carbohydrates: %.1f g/day\n"
	microTitle    = "== Vitamins and minerals (approx.) =="
	plainMicroFmt = "%-25s : %-18s | %s\n"
	notesTitle    = "Notes:"
)

var microHeaders = []string{"Nutrient", "Daily need", "Note"}
