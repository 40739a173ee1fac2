package chat

import (
	"strings"
	"testing"
)

func firstPickResponder() *Responder {
	return &Responder{pick: func(int) int { return 0 }}
}

func TestRespondRiskViewKeywords(t *testing.T) {
	r := firstPickResponder()

	if got := r.Respond("is my risk high?", ViewRisk); got != highRiskResponses[0] {
		t.Errorf("high keyword: %q", got)
	}
	if got := r.Respond("sounds Serious to me", ViewRisk); got != highRiskResponses[0] {
		t.Errorf("serious keyword (case-insensitive): %q", got)
	}
	if got := r.Respond("a moderate concern", ViewRisk); got != mediumRiskResponses[0] {
		t.Errorf("moderate keyword: %q", got)
	}
	if got := r.Respond("tell me more", ViewRisk); got != lowRiskResponses[0] {
		t.Errorf("default falls back to low risk: %q", got)
	}
}

func TestRespondRecommendationsKeywords(t *testing.T) {
	r := firstPickResponder()

	cases := []struct {
		query string
		want  string
	}{
		{"what should I eat?", "dietary recommendations"},
		{"any exercise ideas?", "exercise recommendations"},
		{"I'm stressed out", "Managing stress"},
		{"give me the basics", "key recommendations"},
	}
	for _, tc := range cases {
		got := r.Respond(tc.query, ViewRecommendations)
		if !strings.Contains(got, tc.want) {
			t.Errorf("Respond(%q) = %q, want substring %q", tc.query, got, tc.want)
		}
	}
}

func TestRespondCoachingKeywords(t *testing.T) {
	r := firstPickResponder()

	cases := []struct {
		query string
		want  string
	}{
		{"help with my routine", "healthy habits"},
		{"this is really hard", "face challenges"},
		{"how do I track progress?", "Tracking your progress"},
		{"hello coach", "heart health coach"},
	}
	for _, tc := range cases {
		got := r.Respond(tc.query, ViewCoaching)
		if !strings.Contains(got, tc.want) {
			t.Errorf("Respond(%q) = %q, want substring %q", tc.query, got, tc.want)
		}
	}
}

func TestRespondGeneralRouting(t *testing.T) {
	r := firstPickResponder()

	if got := r.Respond("show my risk profile", ViewGeneral); !strings.Contains(got, "risk profile") {
		t.Errorf("risk routing: %q", got)
	}
	if got := r.Respond("any advice?", ViewGeneral); !strings.Contains(got, "recommendations") {
		t.Errorf("advice routing: %q", got)
	}
	if got := r.Respond("can you help me?", ViewGeneral); !strings.Contains(got, "coach") {
		t.Errorf("coach routing: %q", got)
	}
	if got := r.Respond("hi", ViewGeneral); !strings.Contains(got, "cardiovascular health assistant") {
		t.Errorf("default: %q", got)
	}
}

func TestViewSwitchMessage(t *testing.T) {
	for _, view := range []View{ViewRisk, ViewRecommendations, ViewCoaching, ViewGeneral} {
		if ViewSwitchMessage(view) == "" {
			t.Errorf("empty switch message for %s", view)
		}
	}
}
