package domain

// Requirement is the recommended daily amount of one nutrient.
type Requirement struct {
	Name   string
	Amount float64
	Unit   string
	Note   string
}

// Table is an ordered set of requirements keyed by nutrient name.
// Order is presentation only: vitamins first, then minerals.
type Table struct {
	entries []Requirement
	index   map[string]int
}

func newTable(groups ...[]Requirement) *Table {
	t := &Table{index: make(map[string]int)}
	for _, g := range groups {
		for _, r := range g {
			t.set(r)
		}
	}
	return t
}

// Get returns the requirement for name.
func (t *Table) Get(name string) (Requirement, bool) {
	i, ok := t.index[name]
	if !ok {
		return Requirement{}, false
	}
	return t.entries[i], true
}

// set replaces the requirement in place, or appends it if the name is new.
// Only table construction and overrides call it, which keeps the key set fixed.
func (t *Table) set(r Requirement) {
	if i, ok := t.index[r.Name]; ok {
		t.entries[i] = r
		return
	}
	t.index[r.Name] = len(t.entries)
	t.entries = append(t.entries, r)
}

// Len returns the number of nutrients.
func (t *Table) Len() int { return len(t.entries) }

// Names returns nutrient names in display order.
func (t *Table) Names() []string {
	names := make([]string, len(t.entries))
	for i, r := range t.entries {
		names[i] = r.Name
	}
	return names
}

// Requirements returns a copy of all entries in display order.
func (t *Table) Requirements() []Requirement {
	out := make([]Requirement, len(t.entries))
	copy(out, t.entries)
	return out
}

// Nutrient names. The set is fixed; overrides never add or remove one.
const (
	VitaminA        = "Vitamin A"
	VitaminC        = "Vitamin C"
	VitaminD        = "Vitamin D"
	VitaminE        = "Vitamin E"
	VitaminK        = "Vitamin K"
	Thiamin         = "Thiamin (B1)"
	Riboflavin      = "Riboflavin (B2)"
	Niacin          = "Niacin (B3)"
	VitaminB6       = "Vitamin B6"
	Folate          = "Folate (B9)"
	VitaminB12      = "Vitamin B12"
	PantothenicAcid = "Pantothenic acid (B5)"
	Biotin          = "Biotin (B7)"

	Calcium    = "Calcium"
	Iron       = "Iron"
	Magnesium  = "Magnesium"
	Phosphorus = "Phosphorus"
	Potassium  = "Potassium"
	Sodium     = "Sodium"
	Zinc       = "Zinc"
	Copper     = "Copper"
	Manganese  = "Manganese"
	Selenium   = "Selenium"
	Chromium   = "Chromium"
	Iodine     = "Iodine"
	Fluoride   = "Fluoride"
)

// AdultBand is the only age band the reference values cover (19-50 years).
// BuildTable accepts an age so other bands can be added without changing callers.
var AdultBand = [2]int{19, 50}

const vitaminDUnit = "µg (600 IU)"

// Approximate adult RDA/AI values.
var (
	maleVitamins = []Requirement{
		{VitaminA, 900, "µg RAE", "Adult male RDA"},
		{VitaminC, 90, "mg", ""},
		{VitaminD, 15, vitaminDUnit, ""},
		{VitaminE, 15, "mg", ""},
		{VitaminK, 120, "µg", ""},
		{Thiamin, 1.2, "mg", ""},
		{Riboflavin, 1.3, "mg", ""},
		{Niacin, 16, "mg NE", ""},
		{VitaminB6, 1.3, "mg", "may increase with age"},
		{Folate, 400, "µg DFE", ""},
		{VitaminB12, 2.4, "µg", ""},
		{PantothenicAcid, 5, "mg", ""},
		{Biotin, 30, "µg", ""},
	}
	femaleVitamins = []Requirement{
		{VitaminA, 700, "µg RAE", "Adult female RDA"},
		{VitaminC, 75, "mg", ""},
		{VitaminD, 15, vitaminDUnit, ""},
		{VitaminE, 15, "mg", ""},
		{VitaminK, 90, "µg", ""},
		{Thiamin, 1.1, "mg", ""},
		{Riboflavin, 1.1, "mg", ""},
		{Niacin, 14, "mg NE", ""},
		{VitaminB6, 1.3, "mg", ""},
		{Folate, 400, "µg DFE", ""},
		{VitaminB12, 2.4, "µg", ""},
		{PantothenicAcid, 5, "mg", ""},
		{Biotin, 30, "µg", ""},
	}
	maleMinerals = []Requirement{
		{Calcium, 1000, "mg", "Adults 19-50"},
		{Iron, 8, "mg", "Men"},
		{Magnesium, 400, "mg", "Adult male"},
		{Phosphorus, 700, "mg", ""},
		{Potassium, 3400, "mg", "AI"},
		{Sodium, 1500, "mg", "AI (upper limits higher)"},
		{Zinc, 11, "mg", ""},
		{Copper, 0.9, "mg", ""},
		{Manganese, 2.3, "mg", ""},
		{Selenium, 55, "µg", ""},
		{Chromium, 35, "µg", ""},
		{Iodine, 150, "µg", ""},
		{Fluoride, 4, "mg", "AI"},
	}
	femaleMinerals = []Requirement{
		{Calcium, 1000, "mg", "Adults 19-50"},
		{Iron, 18, "mg", "Women of reproductive age"},
		{Magnesium, 310, "mg", "Adult female"},
		{Phosphorus, 700, "mg", ""},
		{Potassium, 2600, "mg", "AI"},
		{Sodium, 1500, "mg", "AI (upper limits higher)"},
		{Zinc, 8, "mg", ""},
		{Copper, 0.9, "mg", ""},
		{Manganese, 1.8, "mg", ""},
		{Selenium, 55, "µg", ""},
		{Chromium, 25, "µg", ""},
		{Iodine, 150, "µg", ""},
		{Fluoride, 3, "mg", "AI"},
	}
)

var (
	menstruationOverrides = []Requirement{
		{Iron, 18, "mg", "Increased due to menstrual losses"},
	}
	pregnancyOverrides = []Requirement{
		{Folate, 600, "µg DFE", "Pregnancy increased need"},
		{Iron, 27, "mg", "Pregnancy increased need"},
		{Calcium, 1000, "mg", "Pregnancy recommendation"},
		{VitaminD, 15, vitaminDUnit, "May be increased based on status"},
		{Iodine, 220, "µg", "Pregnancy increased need"},
	}
	lactationOverrides = []Requirement{
		{Folate, 500, "µg DFE", "Lactation increased need"},
		{Iron, 9, "mg", "Postpartum needs lower than pregnancy"},
		{VitaminD, 15, vitaminDUnit, ""},
		{Iodine, 290, "µg", "Lactation increased need"},
	}
)

// BaseTable returns a fresh copy of the sex-specific reference table, without overrides.
func BaseTable(sex Sex) *Table {
	if sex == Male {
		return newTable(maleVitamins, maleMinerals)
	}
	return newTable(femaleVitamins, femaleMinerals)
}

// BuildTable returns the micronutrient requirements for a demographic.
//
// Reproductive overrides apply only to Female, in the order menstruation,
// pregnancy, lactation. Each replaces the whole requirement; when both
// pregnant and breastfeeding are set the lactation values win.
// age is currently unused: every age maps to AdultBand.
func BuildTable(sex Sex, age int, status ReproductiveStatus) *Table {
	t := BaseTable(sex)
	if sex != Female {
		return t
	}
	if status.Menstruating {
		applyOverrides(t, menstruationOverrides)
	}
	if status.Pregnant {
		applyOverrides(t, pregnancyOverrides)
	}
	if status.Breastfeeding {
		applyOverrides(t, lactationOverrides)
	}
	return t
}

func applyOverrides(t *Table, overrides []Requirement) {
	for _, r := range overrides {
		t.set(r)
	}
}
