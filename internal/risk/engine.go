package risk

// Profile holds the computed risk percentages. Every score is clamped to
// [0,100].
type Profile struct {
	Total              int `json:"total"`
	HeartAttack        int `json:"heart_attack"`
	Angina             int `json:"angina"`
	IschemicHeart      int `json:"ischemic_heart"`
	AtrialFibrillation int `json:"atrial_fibrillation"`
}

// Base risk levels before lifestyle contributions are applied.
const (
	baseTotal              = 10
	baseHeartAttack        = 15
	baseAngina             = 10
	baseIschemicHeart      = 25
	baseAtrialFibrillation = 10
)

// Compute maps the selected smoking and activity bands to a risk profile.
// Each condition weighs the two factors differently; the total counts both
// at weight one.
func Compute(smoking, activity Option) Profile {
	return Profile{
		Total:              clamp(baseTotal + smoking.Value + activity.Value),
		HeartAttack:        clamp(baseHeartAttack + smoking.Value*3 + activity.Value*2),
		Angina:             clamp(baseAngina + smoking.Value*2 + activity.Value),
		IschemicHeart:      clamp(baseIschemicHeart + smoking.Value + activity.Value*3),
		AtrialFibrillation: clamp(baseAtrialFibrillation + smoking.Value*2 + activity.Value*2),
	}
}

func clamp(value int) int {
	if value > 100 {
		return 100
	}
	if value < 0 {
		return 0
	}
	return value
}

// GridCells is the size of the smiley grid the client renders.
const GridCells = 36

// FilledCells reports how many grid cells show as at-risk for a percentage.
// The division truncates, matching the on-screen grid.
func FilledCells(riskPct int) int {
	return GridCells * riskPct / 100
}

// TrendSample is one month of the illustrative risk history shown in the
// profile chart. The samples are static display data, not computed history.
type TrendSample struct {
	Month string `json:"month"`
	Risk  int    `json:"risk"`
}

// MonthlyTrend returns the illustrative monthly samples.
func MonthlyTrend() []TrendSample {
	return []TrendSample{
		{Month: "March", Risk: 75},
		{Month: "April", Risk: 65},
		{Month: "May", Risk: 58},
	}
}
