package intake

// Prompt texts in English.
const (
	introText = "Enter your details (press Enter to use the default where one is shown):"

	askSex           = "Sex (male/female)"
	askAge           = "Age (years)"
	askWeight        = "Weight (kg)"
	askHeight        = "Height (cm)"
	askBodyFat       = "Body fat (%) - leave blank if unknown"
	askActivity      = "Activity level (sedentary, light, moderate, active, very_active)"
	askGoal          = "Goal (maintain, lose, gain)"
	askMenstruating  = "Do you have a regular menstrual cycle? (yes/no)"
	askPregnant      = "Are you pregnant? (yes/no)"
	askBreastfeeding = "Are you breastfeeding? (yes/no)"
	askNotes         = "Medical notes / medications (optional)"

	invalidText = "Invalid input, using default."
)

// Default answers shown in brackets.
const (
	defaultSex           = "male"
	defaultAge           = "30"
	defaultWeight        = "70"
	defaultHeight        = "175"
	defaultActivity      = "light"
	defaultGoal          = "maintain"
	defaultMenstruating  = "yes"
	defaultPregnant      = "no"
	defaultBreastfeeding = "no"
)
