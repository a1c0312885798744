package domain

import "math"

// MacroTargets are the daily macronutrient targets in grams.
type MacroTargets struct {
	ProteinGPerDay float64
	ProteinGPerKg  float64
	FatGPerDay     float64
	CarbsGPerDay   float64
}

// Protein is the body-weight based protein target.
type Protein struct {
	GPerDay float64 // rounded to 1 decimal
	GPerKg  float64 // rounded to 2 decimals
}

const (
	baseProteinRate   = 0.8
	activeProteinRate = 1.2
	gainProteinBonus  = 0.3
	loseProteinBonus  = 0.2

	fatEnergyShare = 0.30

	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// ProteinRate returns the protein heuristic in g/kg.
// Moderate and above replace the base rate; the goal bonus is added on top.
func ProteinRate(activity ActivityLevel, goal Goal) float64 {
	rate := baseProteinRate
	switch activity {
	case Moderate, Active, VeryActive:
		rate = activeProteinRate
	}
	switch goal {
	case Gain:
		rate += gainProteinBonus
	case Lose:
		rate += loseProteinBonus
	}
	return rate
}

// ComputeProtein derives the daily protein target from body weight.
func ComputeProtein(weightKg float64, activity ActivityLevel, goal Goal) Protein {
	rate := ProteinRate(activity, goal)
	return Protein{
		GPerDay: roundTo(rate*weightKg, 1),
		GPerKg:  roundTo(rate, 2),
	}
}

// SplitEnergy assigns 30% of tdee to fat and the remainder after protein to carbohydrate.
// Carbohydrate never goes below zero, even when protein alone exceeds the budget.
func SplitEnergy(tdee, proteinG float64) (fatG, carbsG float64) {
	fatKcal := tdee * fatEnergyShare
	fatG = fatKcal / kcalPerGramFat
	carbsKcal := tdee - proteinG*kcalPerGramProtein - fatKcal
	carbsG = math.Max(0, carbsKcal/kcalPerGramCarbs)
	return fatG, carbsG
}

// ComputeMacros folds the protein heuristic and the energy split together.
func ComputeMacros(weightKg float64, activity ActivityLevel, goal Goal, tdee float64) MacroTargets {
	p := ComputeProtein(weightKg, activity, goal)
	fatG, carbsG := SplitEnergy(tdee, p.GPerDay)
	return MacroTargets{
		ProteinGPerDay: p.GPerDay,
		ProteinGPerKg:  p.GPerKg,
		FatGPerDay:     fatG,
		CarbsGPerDay:   carbsG,
	}
}

// roundTo rounds half to even, so 56.25 becomes 56.2.
func roundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.RoundToEven(v*pow) / pow
}
