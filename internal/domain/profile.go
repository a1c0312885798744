package domain

// Sex selects the BMR constant and the micronutrient base table.
type Sex int

const (
	Female Sex = iota
	Male
)

func (s Sex) String() string {
	if s == Male {
		return "male"
	}
	return "female"
}

// ActivityLevel is the self-reported daily activity tier.
type ActivityLevel int

const (
	Sedentary ActivityLevel = iota
	Light
	Moderate
	Active
	VeryActive
)

func (a ActivityLevel) String() string {
	switch a {
	case Sedentary:
		return "sedentary"
	case Moderate:
		return "moderate"
	case Active:
		return "active"
	case VeryActive:
		return "very_active"
	default:
		return "light"
	}
}

// Goal is the body-weight goal applied on top of TDEE.
type Goal int

const (
	Maintain Goal = iota
	Lose
	Gain
)

func (g Goal) String() string {
	switch g {
	case Lose:
		return "lose"
	case Gain:
		return "gain"
	default:
		return "maintain"
	}
}

// ReproductiveStatus flags are only honored for Female profiles.
type ReproductiveStatus struct {
	Menstruating  bool
	Pregnant      bool
	Breastfeeding bool
}

// UserProfile is the validated input of a single estimate.
type UserProfile struct {
	Sex        Sex
	Age        int      // years
	WeightKg   float64  // kg
	HeightCm   float64  // cm
	BodyFatPct *float64 // 0..100, nil when unknown
	Activity   ActivityLevel
	Goal       Goal
	Status     ReproductiveStatus
	Notes      string // pass-through, never used in calculations
}

// DefaultProfile returns the answers used when the user just presses Enter.
func DefaultProfile() UserProfile {
	return UserProfile{
		Sex:      Male,
		Age:      30,
		WeightKg: 70,
		HeightCm: 175,
		Activity: Light,
		Goal:     Maintain,
	}
}

// LeanBodyMass returns weight minus fat mass, or false if body fat is unknown.
func (p UserProfile) LeanBodyMass() (float64, bool) {
	if p.BodyFatPct == nil {
		return 0, false
	}
	return p.WeightKg * (1 - *p.BodyFatPct/100.0), true
}
