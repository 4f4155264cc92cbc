package analysis

// defaultResponses holds the candidate responses for each detected category.
var defaultResponses = map[Category][]string{
	CategoryGreeting: {
		"Hello! How are you feeling today?",
		"Hi there! How's your day going?",
		"Hey! It's good to see you. How are you doing?",
	},
	CategoryGratitude: {
		"You're welcome. I'm here to support you.",
		"I'm glad I could help in some way.",
		"It's my pleasure to be here for you.",
	},
	CategoryFarewell: {
		"Take care of yourself. I'll be here when you return.",
		"Goodbye for now. Remember to be kind to yourself.",
		"Until next time. Remember that each day is a new opportunity.",
	},
	CategoryAffirmation: {
		"I'm glad to hear that.",
		"That's good to know.",
		"I understand.",
	},
	CategoryNegation: {
		"I understand. Can you tell me more about that?",
		"That's okay. Would you like to share why you feel that way?",
		"I hear you. What would feel better for you right now?",
	},
	CategoryQuestion: {
		"That's a good question to reflect on. What are your thoughts?",
		"I'd encourage you to explore that question. What feels right to you?",
		"That's something worth considering carefully. What do you think?",
	},
	CategoryStress: {
		"It sounds like you're feeling stressed. Would a breathing exercise help right now?",
		"Stress can be challenging. What has helped you manage stress in the past?",
		"When you're feeling this way, it can help to focus on what's in your control.",
	},
	CategorySleep: {
		"Sleep is so important for wellbeing. Have you been having trouble sleeping?",
		"Rest is essential. What's your sleep routine like currently?",
		"Sleep challenges can affect our mood significantly. Would you like some tips for better sleep?",
	},
	CategoryMood: {
		"It's important to acknowledge your feelings. How long have you been feeling this way?",
		"Thank you for sharing how you're feeling. Is there anything specific triggering this emotion?",
		"I appreciate you opening up about your mood. What might help you feel a bit better right now?",
	},
	CategorySelfCritical: {
		"I notice you're being quite hard on yourself. How would you talk to a friend in this situation?",
		"We all make mistakes. Can you try to show yourself the same compassion you'd offer others?",
		"It's natural to have regrets, but dwelling on them isn't always helpful. What could you learn from this experience?",
	},
}

// defaultFallbacks holds the responses used when no pattern matched, keyed by
// sentiment label.
var defaultFallbacks = map[Label][]string{
	LabelPositive: {
		"I'm glad to hear you're feeling positive.",
		"That sounds really good. What's been helping you feel this way?",
		"It's great that you're in a good place right now.",
	},
	LabelNegative: {
		"I'm sorry to hear you're feeling this way. Would you like to talk more about it?",
		"That sounds difficult. What might help you feel a bit better right now?",
		"I hear that you're struggling. Remember that feelings are temporary, even when they seem overwhelming.",
	},
	LabelNeutral: {
		"I'm here to listen if you'd like to share more.",
		"How can I best support you today?",
		"Would you like to explore that further?",
	},
}

// defaultCategoryPrompts maps pattern categories to journal prompt
// candidates. Only the four reflective categories contribute prompts.
var defaultCategoryPrompts = map[Category][]string{
	CategoryStress: {
		"What specific situations are causing you stress right now, and what resources could help you handle them?",
		"When you feel stressed, what activities or practices help you find calm?",
	},
	CategorySleep: {
		"Describe your ideal evening routine for better sleep. What steps could you take to make it reality?",
		"How does your quality of sleep affect your mood and energy the next day?",
	},
	CategoryMood: {
		"What patterns have you noticed in your mood changes? Are there specific triggers?",
		"Describe a recent situation where your mood shifted. What contributed to that change?",
	},
	CategorySelfCritical: {
		"Write a compassionate letter to yourself about the situation you're facing, as if writing to a dear friend.",
		"What would you say to a friend who was being as hard on themselves as you are being on yourself?",
	},
}

// defaultLabelPrompts maps sentiment labels to journal prompt candidates.
// Neutral sentiment contributes nothing from this source.
var defaultLabelPrompts = map[Label][]string{
	LabelPositive: {
		"Describe three things that contributed to your positive feelings today.",
		"How can you bring more of what's working well into other areas of your life?",
	},
	LabelNegative: {
		"What would help you feel even slightly better right now?",
		"Is there a small action you could take today to address what's bothering you?",
	},
}

// defaultPrompts is the generic pool used when no pattern, sentiment, or
// topic contributed a candidate.
var defaultPrompts = []string{
	"What's on your mind today that you'd like to explore further?",
	"Describe a moment from today that stood out to you, and why it matters.",
	"What's one small thing you could do tomorrow to support your wellbeing?",
	"What are you learning about yourself right now?",
	"What would you like to remind yourself of when things get difficult?",
}

// MoodPrompts holds journal prompts keyed by mood valence, used by the
// journal flow when an entry is written straight after a mood check-in.
var MoodPrompts = map[Label][]string{
	LabelPositive: {
		"What made you smile today?",
		"What are you most grateful for right now?",
		"What's something you're looking forward to?",
		"What's something that went well recently?",
		"What's a small win you've had lately?",
		"How did you take care of yourself today?",
		"What's something you're proud of accomplishing?",
		"Who had a positive impact on your day, and how?",
		"What's something beautiful you noticed today?",
		"What's something you learned recently that excited you?",
	},
	LabelNeutral: {
		"What's on your mind today?",
		"How would you describe your energy level right now?",
		"What are you curious about lately?",
		"What do you want to remember about today?",
		"How did today differ from your expectations?",
		"What's something you'd like to do differently tomorrow?",
		"What would make tomorrow a good day?",
		"What are you thinking about but not saying?",
		"What's something you're still figuring out?",
		"If today were a color, what would it be and why?",
	},
	LabelNegative: {
		"What's been challenging for you lately?",
		"What do you need right now that you're not getting?",
		"What would help you feel better in this moment?",
		"What's something that's bothering you that you could let go of?",
		"What negative thought keeps coming up, and how can you reframe it?",
		"What small step could you take to improve your situation?",
		"What's one thing you can control right now?",
		"When was the last time you felt better, and what was different?",
		"What would you tell a friend who was feeling the way you are?",
		"What have you overcome in the past that reminds you of your strength?",
	},
}
