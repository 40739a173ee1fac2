package chat

import "time"

// View identifies which assistant tab a message belongs to.
type View string

const (
	ViewGeneral         View = "general"
	ViewRisk            View = "risk"
	ViewRecommendations View = "recommendations"
	ViewCoaching        View = "coaching"
)

// ValidView reports whether v is one of the assistant tabs.
func ValidView(v View) bool {
	switch v {
	case ViewGeneral, ViewRisk, ViewRecommendations, ViewCoaching:
		return true
	}
	return false
}

// Message is one turn in a conversation with the assistant.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	View      View      `json:"view,omitempty"`
}

// WelcomeMessage greets the user on first load and after the history is
// cleared.
const WelcomeMessage = "Hello! I'm your Heart Health Assistant. I'm here to help you manage your cardiovascular health. How can I assist you today?\n\n• Check your risk profile\n• Get health recommendations\n• Talk to your health coach"
