package domain

// Result is everything computed for one profile.
type Result struct {
	Profile     UserProfile
	Energy      EnergyEstimate
	Macros      MacroTargets
	Micros      *Table
	LeanMassKg  float64
	HasLeanMass bool
}

// Estimate composes the energy model, the macro split and the micronutrient table.
// The micronutrient table depends only on demographics, not on energy.
func Estimate(p UserProfile) Result {
	energy := ComputeEnergy(p)
	res := Result{
		Profile: p,
		Energy:  energy,
		Macros:  ComputeMacros(p.WeightKg, p.Activity, p.Goal, energy.TDEE),
		Micros:  BuildTable(p.Sex, p.Age, p.Status),
	}
	res.LeanMassKg, res.HasLeanMass = p.LeanBodyMass()
	return res
}
