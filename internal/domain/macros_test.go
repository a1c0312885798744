package domain

import "testing"

func TestProteinRate(t *testing.T) {
	cases := []struct {
		activity ActivityLevel
		goal     Goal
		want     float64
	}{
		{Sedentary, Maintain, 0.8},
		{Light, Maintain, 0.8},
		{Moderate, Maintain, 1.2},
		{Active, Maintain, 1.2},
		{VeryActive, Maintain, 1.2},
		{Light, Lose, 1.0},
		{Light, Gain, 1.1},
		{Active, Lose, 1.4},
		{VeryActive, Gain, 1.5},
	}
	for _, c := range cases {
		got := ComputeProtein(1, c.activity, c.goal).GPerKg
		if got != c.want {
			t.Fatalf("%s/%s: want %v, got %v", c.activity, c.goal, c.want, got)
		}
	}
}

func TestProteinRate_MonotoneInActivity(t *testing.T) {
	low := []ActivityLevel{Sedentary, Light}
	high := []ActivityLevel{Moderate, Active, VeryActive}
	for _, g := range []Goal{Maintain, Lose, Gain} {
		for _, l := range low {
			for _, h := range high {
				if ProteinRate(l, g) > ProteinRate(h, g) {
					t.Fatalf("goal %s: rate(%s) > rate(%s)", g, l, h)
				}
			}
		}
	}
}

func TestComputeProtein_Rounding(t *testing.T) {
	p := ComputeProtein(70, Light, Maintain)
	if p.GPerDay != 56.0 {
		t.Fatalf("want 56.0, got %v", p.GPerDay)
	}
	p = ComputeProtein(63.37, Moderate, Gain)
	// 1.5 * 63.37 = 95.055
	if p.GPerDay != 95.1 {
		t.Fatalf("want 95.1, got %v", p.GPerDay)
	}
	// 1.5 * 37.5 = 56.25 is an exact tie and rounds to even.
	p = ComputeProtein(37.5, Moderate, Gain)
	if p.GPerDay != 56.2 {
		t.Fatalf("want 56.2, got %v", p.GPerDay)
	}
}

func TestSplitEnergy(t *testing.T) {
	fat, carbs := SplitEnergy(2000, 100)
	if diff := fat - 600.0/9; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("fat: want %v, got %v", 600.0/9, fat)
	}
	// 2000 - 400 - 600 = 1000 kcal
	if carbs != 250 {
		t.Fatalf("carbs: want 250, got %v", carbs)
	}
}

func TestSplitEnergy_CarbsClampedAtZero(t *testing.T) {
	cases := []struct{ tdee, protein float64 }{
		{0, 300},
		{500, 300},
		{1000, 1000},
		{0, 0},
	}
	for _, c := range cases {
		_, carbs := SplitEnergy(c.tdee, c.protein)
		if carbs < 0 {
			t.Fatalf("tdee=%v protein=%v: negative carbs %v", c.tdee, c.protein, carbs)
		}
	}
	if _, carbs := SplitEnergy(0, 300); carbs != 0 {
		t.Fatalf("want clamp to 0, got %v", carbs)
	}
}

func TestComputeMacros(t *testing.T) {
	m := ComputeMacros(70, Light, Maintain, 2267.03125)
	if m.ProteinGPerDay != 56 || m.ProteinGPerKg != 0.8 {
		t.Fatalf("protein: got %+v", m)
	}
	wantFat, wantCarbs := SplitEnergy(2267.03125, 56)
	if m.FatGPerDay != wantFat || m.CarbsGPerDay != wantCarbs {
		t.Fatalf("split: want %v/%v, got %v/%v", wantFat, wantCarbs, m.FatGPerDay, m.CarbsGPerDay)
	}
}
