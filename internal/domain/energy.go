package domain

// EnergyEstimate holds the resting and adjusted daily energy expenditure in kcal/day.
type EnergyEstimate struct {
	BMR  float64
	TDEE float64
}

const (
	loseFactor = 0.85 // ~15% deficit
	gainFactor = 1.10 // ~10% surplus
)

var activityFactors = map[ActivityLevel]float64{
	Sedentary:  1.2,
	Light:      1.375,
	Moderate:   1.55,
	Active:     1.725,
	VeryActive: 1.9,
}

// ActivityFactor returns the TDEE multiplier for a level, 1.375 (light) if unknown.
func ActivityFactor(a ActivityLevel) float64 {
	if f, ok := activityFactors[a]; ok {
		return f
	}
	return activityFactors[Light]
}

// ComputeBMR uses the Mifflin-St Jeor equation.
// Inputs are not validated: nonsensical values give nonsensical results.
func ComputeBMR(sex Sex, weightKg, heightCm float64, age int) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == Male {
		return bmr + 5
	}
	return bmr - 161
}

// ComputeTDEE scales bmr by the activity factor and applies the goal adjustment.
// No floor or ceiling is applied.
func ComputeTDEE(bmr float64, activity ActivityLevel, goal Goal) float64 {
	tdee := bmr * ActivityFactor(activity)
	switch goal {
	case Lose:
		tdee *= loseFactor
	case Gain:
		tdee *= gainFactor
	}
	return tdee
}

// ComputeEnergy runs both steps for a profile.
func ComputeEnergy(p UserProfile) EnergyEstimate {
	bmr := ComputeBMR(p.Sex, p.WeightKg, p.HeightCm, p.Age)
	return EnergyEstimate{
		BMR:  bmr,
		TDEE: ComputeTDEE(bmr, p.Activity, p.Goal),
	}
}
