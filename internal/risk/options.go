package risk

// Option is one selectable band of a lifestyle risk factor together with its
// contribution to the risk percentage.
type Option struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// SmokingOptions are the cigarettes-per-day bands, lowest to highest.
var SmokingOptions = []Option{
	{Label: "0!", Value: 0},
	{Label: "0-1", Value: 2},
	{Label: "1-2", Value: 3},
	{Label: "2-3", Value: 4},
	{Label: "3-5", Value: 6},
	{Label: "5-10", Value: 8},
	{Label: "10-20", Value: 10},
	{Label: "> 20", Value: 12},
}

// ActivityOptions are the daily-exercise bands, most to least active.
var ActivityOptions = []Option{
	{Label: "> 60 minutes", Value: 0},
	{Label: "30-60 minutes", Value: 3},
	{Label: "10-30 minutes", Value: 6},
	{Label: "0-10 minutes", Value: 8},
	{Label: "None", Value: 10},
}

// DefaultSmoking is the preselected smoking band (no cigarettes).
func DefaultSmoking() Option { return SmokingOptions[0] }

// DefaultActivity is the preselected activity band (10-30 minutes).
func DefaultActivity() Option { return ActivityOptions[2] }

// FindSmoking resolves a smoking band by its label.
func FindSmoking(label string) (Option, bool) {
	return findOption(SmokingOptions, label)
}

// FindActivity resolves an activity band by its label.
func FindActivity(label string) (Option, bool) {
	return findOption(ActivityOptions, label)
}

func findOption(options []Option, label string) (Option, bool) {
	for _, option := range options {
		if option.Label == label {
			return option, true
		}
	}
	return Option{}, false
}
