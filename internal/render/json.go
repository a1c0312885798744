package render

import (
	"encoding/json"
	"io"

	"github.com/ykvlv/nutricalc/assets"
	"github.com/ykvlv/nutricalc/internal/domain"
)

// JSON renders the result as an indented JSON document.
type JSON struct{}

type jsonProfile struct {
	Sex           string   `json:"sex"`
	Age           int      `json:"age"`
	WeightKg      float64  `json:"weight_kg"`
	HeightCm      float64  `json:"height_cm"`
	BodyFatPct    *float64 `json:"body_fat_pct"`
	LeanMassKg    *float64 `json:"lean_mass_kg,omitempty"`
	Activity      string   `json:"activity"`
	Goal          string   `json:"goal"`
	Menstruating  bool     `json:"menstruating"`
	Pregnant      bool     `json:"pregnant"`
	Breastfeeding bool     `json:"breastfeeding"`
	Notes         string   `json:"notes,omitempty"`
}

type jsonEnergy struct {
	BMR  float64 `json:"bmr_kcal"`
	TDEE float64 `json:"tdee_kcal"`
}

type jsonMacros struct {
	ProteinGPerDay float64 `json:"protein_g_per_day"`
	ProteinGPerKg  float64 `json:"protein_g_per_kg"`
	FatGPerDay     float64 `json:"fat_g_per_day"`
	CarbsGPerDay   float64 `json:"carbs_g_per_day"`
}

type jsonNutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Note   string  `json:"note,omitempty"`
}

type jsonResult struct {
	Profile        jsonProfile    `json:"profile"`
	Energy         jsonEnergy     `json:"energy"`
	Macros         jsonMacros     `json:"macros"`
	Micronutrients []jsonNutrient `json:"micronutrients"`
	Notes          []string       `json:"notes"`
}

// Render implements Renderer. Micronutrients are a list to keep display order.
func (JSON) Render(w io.Writer, res domain.Result) error {
	p := res.Profile
	out := jsonResult{
		Profile: jsonProfile{
			Sex:           p.Sex.String(),
			Age:           p.Age,
			WeightKg:      p.WeightKg,
			HeightCm:      p.HeightCm,
			BodyFatPct:    p.BodyFatPct,
			Activity:      p.Activity.String(),
			Goal:          p.Goal.String(),
			Menstruating:  p.Status.Menstruating,
			Pregnant:      p.Status.Pregnant,
			Breastfeeding: p.Status.Breastfeeding,
			Notes:         p.Notes,
		},
		Energy: jsonEnergy{BMR: res.Energy.BMR, TDEE: res.Energy.TDEE},
		Macros: jsonMacros{
			ProteinGPerDay: res.Macros.ProteinGPerDay,
			ProteinGPerKg:  res.Macros.ProteinGPerKg,
			FatGPerDay:     res.Macros.FatGPerDay,
			CarbsGPerDay:   res.Macros.CarbsGPerDay,
		},
		Notes: assets.Notes(),
	}
	if res.HasLeanMass {
		lbm := res.LeanMassKg
		out.Profile.LeanMassKg = &lbm
	}
	for _, r := range res.Micros.Requirements() {
		out.Micronutrients = append(out.Micronutrients, jsonNutrient(r))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
