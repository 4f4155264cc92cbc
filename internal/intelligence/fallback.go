package intelligence

import "fmt"

// TimeOfDay maps an hour (0-23) onto the word used in greetings.
func TimeOfDay(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 22:
		return "evening"
	default:
		return "night"
	}
}

// DeterministicGreeting builds a session greeting without a language model.
func DeterministicGreeting(gc GreetingContext) string {
	timeOfDay := gc.TimeOfDay
	if timeOfDay == "" {
		timeOfDay = "day"
	}

	namePart := ""
	if gc.Name != "" {
		namePart = ", " + gc.Name
	}

	greeting := fmt.Sprintf("Good %s%s! I'm here to listen and support you today.", timeOfDay, namePart)
	if gc.DaysSince > 1 {
		greeting = fmt.Sprintf("Welcome back%s! It's been %d days. How are you feeling this %s?", namePart, gc.DaysSince, timeOfDay)
	}

	if gc.LastMood != nil && gc.LastMood.Negative() {
		greeting += " Last time things felt heavy, so let's take it gently."
	}
	if gc.DueReminders == 1 {
		greeting += " You have 1 reminder due."
	} else if gc.DueReminders > 1 {
		greeting += fmt.Sprintf(" You have %d reminders due.", gc.DueReminders)
	}

	return greeting
}
