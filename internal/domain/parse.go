package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrEmptyValue    = errors.New("empty value")
	ErrInvalidNumber = errors.New("invalid number")
	ErrOutOfRange    = errors.New("value out of range")
)

func normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

// ParseSex maps "male" to Male; every other value falls back to Female.
func ParseSex(s string) Sex {
	if normalize(s) == "male" {
		return Male
	}
	return Female
}

// ParseActivity maps an activity name to its level.
// Unrecognized values fall back to Light.
func ParseActivity(s string) ActivityLevel {
	switch normalize(s) {
	case "sedentary":
		return Sedentary
	case "light":
		return Light
	case "moderate":
		return Moderate
	case "active":
		return Active
	case "very_active":
		return VeryActive
	default:
		return Light
	}
}

// ParseGoal maps "lose"/"gain"; anything else means Maintain (no adjustment).
func ParseGoal(s string) Goal {
	switch normalize(s) {
	case "lose":
		return Lose
	case "gain":
		return Gain
	default:
		return Maintain
	}
}

// ParseYesNo reports whether the answer is "yes".
func ParseYesNo(s string) bool {
	return normalize(s) == "yes"
}

// ParseAge parses a whole number of years, which must be positive.
func ParseAge(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyValue
	}
	if !isAllDigits(s) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, s)
	}
	age, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, s)
	}
	if age <= 0 {
		return 0, fmt.Errorf("%w: age must be positive", ErrOutOfRange)
	}
	return age, nil
}

// ParseMeasure parses a positive real number such as a weight in kg or a height in cm.
func ParseMeasure(s string) (float64, error) {
	v, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: must be positive", ErrOutOfRange)
	}
	return v, nil
}

// ParseBodyFat parses an optional body-fat percentage.
// A blank answer means unknown and yields nil without error.
func ParseBodyFat(s string) (*float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := parseFloat(s)
	if err != nil {
		return nil, err
	}
	if v < 0 || v > 100 {
		return nil, fmt.Errorf("%w: body fat must be within 0..100", ErrOutOfRange)
	}
	return &v, nil
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyValue
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, s)
	}
	return v, nil
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
