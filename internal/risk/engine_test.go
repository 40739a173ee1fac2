package risk

import "testing"

func TestComputeKnownValues(t *testing.T) {
	smoking, ok := FindSmoking("> 20")
	if !ok || smoking.Value != 12 {
		t.Fatalf("expected > 20 band with value 12, got %+v (ok=%v)", smoking, ok)
	}
	activity, ok := FindActivity("None")
	if !ok || activity.Value != 10 {
		t.Fatalf("expected None band with value 10, got %+v (ok=%v)", activity, ok)
	}

	profile := Compute(smoking, activity)

	if profile.Total != 32 {
		t.Errorf("expected total 32, got %d", profile.Total)
	}
	if profile.HeartAttack != 71 {
		t.Errorf("expected heart attack 71, got %d", profile.HeartAttack)
	}
	if profile.Angina != 44 {
		t.Errorf("expected angina 44, got %d", profile.Angina)
	}
	if profile.IschemicHeart != 67 {
		t.Errorf("expected ischemic heart 67, got %d", profile.IschemicHeart)
	}
	if profile.AtrialFibrillation != 54 {
		t.Errorf("expected atrial fibrillation 54, got %d", profile.AtrialFibrillation)
	}
}

func TestComputeDefaults(t *testing.T) {
	profile := Compute(DefaultSmoking(), DefaultActivity())
	// 0 cigarettes, 10-30 minutes of exercise
	if profile.Total != 16 {
		t.Errorf("expected default total 16, got %d", profile.Total)
	}
}

func TestComputeAllPairsInRange(t *testing.T) {
	for _, smoking := range SmokingOptions {
		for _, activity := range ActivityOptions {
			profile := Compute(smoking, activity)
			for name, score := range map[string]int{
				"total":               profile.Total,
				"heart_attack":        profile.HeartAttack,
				"angina":              profile.Angina,
				"ischemic_heart":      profile.IschemicHeart,
				"atrial_fibrillation": profile.AtrialFibrillation,
			} {
				if score < 0 || score > 100 {
					t.Errorf("%s out of range for %q/%q: %d", name, smoking.Label, activity.Label, score)
				}
			}
		}
	}
}

func TestComputeClosedForm(t *testing.T) {
	for _, smoking := range SmokingOptions {
		for _, activity := range ActivityOptions {
			profile := Compute(smoking, activity)
			if want := minInt(100, 10+smoking.Value+activity.Value); profile.Total != want {
				t.Errorf("total for %q/%q: got %d, want %d", smoking.Label, activity.Label, profile.Total, want)
			}
			if want := minInt(100, 15+smoking.Value*3+activity.Value*2); profile.HeartAttack != want {
				t.Errorf("heart attack for %q/%q: got %d, want %d", smoking.Label, activity.Label, profile.HeartAttack, want)
			}
		}
	}
}

func TestFilledCells(t *testing.T) {
	cases := []struct {
		risk, want int
	}{
		{0, 0},
		{1, 0},
		{16, 5},  // 36*16/100 = 5.76 -> 5
		{32, 11}, // 36*32/100 = 11.52 -> 11
		{50, 18},
		{99, 35},
		{100, 36},
	}
	for _, c := range cases {
		if got := FilledCells(c.risk); got != c.want {
			t.Errorf("FilledCells(%d) = %d, want %d", c.risk, got, c.want)
		}
	}

	prev := 0
	for riskPct := 0; riskPct <= 100; riskPct++ {
		cells := FilledCells(riskPct)
		if cells < prev {
			t.Fatalf("FilledCells not monotonic at %d: %d < %d", riskPct, cells, prev)
		}
		if cells < 0 || cells > GridCells {
			t.Fatalf("FilledCells(%d) out of bounds: %d", riskPct, cells)
		}
		prev = cells
	}
}

func TestOptionSets(t *testing.T) {
	if len(SmokingOptions) != 8 {
		t.Errorf("expected 8 smoking bands, got %d", len(SmokingOptions))
	}
	if len(ActivityOptions) != 5 {
		t.Errorf("expected 5 activity bands, got %d", len(ActivityOptions))
	}
	if _, ok := FindSmoking("nope"); ok {
		t.Error("expected lookup miss for unknown smoking label")
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
