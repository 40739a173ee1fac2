package chat

import (
	"math/rand"
	"strings"
)

var lowRiskResponses = []string{
	"Based on the information you've shared, your cardiovascular risk appears to be relatively low. However, it's always good to monitor your health regularly.",
	"Your risk factors appear to be well-managed. Regular check-ups with your doctor are still important to maintain this positive status.",
	"Your current cardiovascular health metrics suggest a lower risk profile. This is great news, but continued monitoring is recommended.",
}

var mediumRiskResponses = []string{
	"I've analyzed your health data and there are some factors that suggest a moderate cardiovascular risk. Let's discuss how to address these specific areas.",
	"Your cardiovascular risk assessment shows some areas of concern. With targeted lifestyle changes, we can work to improve these factors.",
	"Based on your health metrics, you have a moderate risk level. The good news is that many of these factors can be improved with the right approach.",
}

var highRiskResponses = []string{
	"After reviewing your health information, I notice several significant risk factors for cardiovascular disease that should be addressed promptly.",
	"Your current health metrics indicate a higher risk profile for heart disease. It's important to work closely with your healthcare provider on a management plan.",
	"Your cardiovascular risk assessment shows several areas that need attention. Let's focus on creating an action plan to address these risks systematically.",
}

// Responder produces the scripted per-tab assistant replies. The pick
// function selects among response variants; it is injectable so tests stay
// deterministic.
type Responder struct {
	pick func(n int) int
}

func NewResponder() *Responder {
	return &Responder{pick: rand.Intn}
}

// Respond routes a user query to the scripted reply for the active tab.
func (r *Responder) Respond(query string, view View) string {
	switch view {
	case ViewRisk:
		return r.riskProfileResponse(query)
	case ViewRecommendations:
		return recommendationsResponse(query)
	case ViewCoaching:
		return coachingResponse(query)
	default:
		return generalResponse(query)
	}
}

func (r *Responder) riskProfileResponse(query string) string {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "high") || strings.Contains(q, "serious"):
		return highRiskResponses[r.pick(len(highRiskResponses))]
	case strings.Contains(q, "medium") || strings.Contains(q, "moderate"):
		return mediumRiskResponses[r.pick(len(mediumRiskResponses))]
	default:
		return lowRiskResponses[r.pick(len(lowRiskResponses))]
	}
}

func recommendationsResponse(query string) string {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "diet") || strings.Contains(q, "food") || strings.Contains(q, "eat"):
		return "Here are some heart-healthy dietary recommendations:\n\n• Follow a Mediterranean-style diet rich in fruits, vegetables, whole grains, and lean proteins\n• Reduce sodium intake to less than 2,300mg per day\n• Limit saturated fats and avoid trans fats\n• Include omega-3 fatty acids from sources like fatty fish\n• Moderate alcohol consumption\n\nWould you like more specific information about any of these recommendations?"
	case strings.Contains(q, "exercise") || strings.Contains(q, "activity") || strings.Contains(q, "move"):
		return "Here are exercise recommendations for heart health:\n\n• Aim for at least 150 minutes of moderate-intensity aerobic activity weekly\n• Include muscle-strengthening activities at least 2 days per week\n• Start slowly and gradually increase intensity if you're new to exercise\n• Consider activities like walking, swimming, or cycling\n• Break up prolonged sitting with short activity breaks\n\nWould you like help creating a specific exercise plan?"
	case strings.Contains(q, "stress") || strings.Contains(q, "anxiety") || strings.Contains(q, "relax"):
		return "Managing stress is important for heart health. Here are some recommendations:\n\n• Practice mindfulness meditation for 10-15 minutes daily\n• Try deep breathing exercises when feeling stressed\n• Maintain social connections and support networks\n• Consider speaking with a mental health professional\n• Ensure adequate sleep of 7-9 hours nightly\n\nWould you like to learn more about any specific stress management technique?"
	default:
		return "Here are key recommendations for cardiovascular health:\n\n• Maintain a healthy diet rich in fruits, vegetables, and whole grains\n• Exercise regularly (aim for 150 minutes weekly)\n• Manage stress through mindfulness and relaxation techniques\n• Get 7-9 hours of quality sleep nightly\n• Don't smoke and limit alcohol consumption\n• Take medications as prescribed by your doctor\n\nWould you like more specific information about any of these areas?"
	}
}

func coachingResponse(query string) string {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "motivation") || strings.Contains(q, "habit") || strings.Contains(q, "routine"):
		return "Building healthy habits takes time and consistency. Try these approaches:\n\n• Start with small, achievable goals rather than major changes\n• Track your progress with a health journal or app\n• Create environmental cues to remind you of your new habits\n• Find an accountability partner for mutual support\n• Celebrate small victories along the way\n\nWhat specific habit would you like to work on first?"
	case strings.Contains(q, "struggle") || strings.Contains(q, "hard") || strings.Contains(q, "difficult") || strings.Contains(q, "challenge"):
		return "It's normal to face challenges when making health changes. Here's how to overcome them:\n\n• Identify specific barriers and brainstorm solutions for each\n• Have contingency plans for common obstacles\n• Focus on progress rather than perfection\n• Reconnect with your deeper motivation for improving health\n• Consider seeking additional support from healthcare providers\n\nWhat specific challenge are you facing right now?"
	case strings.Contains(q, "track") || strings.Contains(q, "progress") || strings.Contains(q, "monitor"):
		return "Tracking your progress is essential for long-term success. Consider:\n\n• Monitoring key health metrics like blood pressure and weight\n• Keeping a food and exercise journal\n• Using health-tracking apps or devices\n• Setting regular check-in times to review your progress\n• Adjusting your goals as needed based on your results\n\nWhat aspects of your health would you find most helpful to track?"
	default:
		return "As your heart health coach, I'm here to support your journey to better cardiovascular health. I can help you:\n\n• Set realistic health goals\n• Develop sustainable habits\n• Overcome challenges and barriers\n• Track and celebrate your progress\n• Stay motivated for the long term\n\nWhat specific aspect of your heart health journey would you like support with today?"
	}
}

func generalResponse(query string) string {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "risk") || strings.Contains(q, "profile"):
		return "I'd be happy to discuss your cardiovascular risk profile. What specific aspects of your health would you like to review?"
	case strings.Contains(q, "recommend") || strings.Contains(q, "suggestion") || strings.Contains(q, "advice"):
		return "I can provide heart health recommendations tailored to your needs. Would you like to hear about diet, exercise, or stress management strategies?"
	case strings.Contains(q, "coach") || strings.Contains(q, "support") || strings.Contains(q, "help me"):
		return "As your heart health coach, I'm here to help you implement positive changes. What specific area would you like coaching with today?"
	default:
		return "I'm your cardiovascular health assistant. I can help with:\n\n• Assessing your risk profile\n• Providing health recommendations\n• Coaching you through lifestyle changes"
	}
}

// ViewSwitchMessage is the notice posted when the user changes tabs.
func ViewSwitchMessage(view View) string {
	switch view {
	case ViewRisk:
		return "I'm now focusing on your cardiovascular risk assessment. What would you like to know about your risk factors?"
	case ViewRecommendations:
		return "Let's talk about heart health recommendations. I can provide guidance on diet, exercise, or medication adherence."
	case ViewCoaching:
		return "I'm here as your health coach. How can I help you implement heart-healthy changes in your daily life?"
	default:
		return "I'm your heart health assistant. How can I help you today?"
	}
}
