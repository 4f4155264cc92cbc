// Package exercises holds the built-in guided exercise catalog. Modules and
// their exercises are static; completion history lives in the database.
package exercises

// Exercise is one guided exercise walked through step by step.
type Exercise struct {
	Name        string
	Description string
	Steps       []string
}

// Module groups exercises around a single wellbeing theme.
type Module struct {
	ID          string
	Name        string
	Description string
	Exercises   []Exercise
}

// FindModule returns the module with the given ID, or nil.
func FindModule(id string) *Module {
	for i := range Modules {
		if Modules[i].ID == id {
			return &Modules[i]
		}
	}
	return nil
}

// FindExercise returns the named exercise within a module, or nil.
func (m *Module) FindExercise(name string) *Exercise {
	for i := range m.Exercises {
		if m.Exercises[i].Name == name {
			return &m.Exercises[i]
		}
	}
	return nil
}

// Modules is the full catalog, in menu order.
var Modules = []Module{
	{
		ID:          "anxiety",
		Name:        "Anxiety Management",
		Description: "Techniques to reduce anxiety and manage panic",
		Exercises: []Exercise{
			{
				Name:        "5-4-3-2-1 Grounding",
				Description: "A sensory awareness exercise to ground yourself in the present moment.",
				Steps: []string{
					"Find a comfortable position and take a deep breath.",
					"Name 5 things you can SEE around you.",
					"Name 4 things you can FEEL or TOUCH right now.",
					"Name 3 things you can HEAR in this moment.",
					"Name 2 things you can SMELL (or like the smell of).",
					"Name 1 thing you can TASTE (or like the taste of).",
					"Notice how your body feels now compared to when you started.",
				},
			},
			{
				Name:        "Progressive Muscle Relaxation",
				Description: "Systematically tense and release muscle groups to reduce physical tension.",
				Steps: []string{
					"Find a quiet, comfortable place to sit or lie down.",
					"Take a deep breath in, and tense your feet and toes for 5 seconds.",
					"Release the tension and notice the difference. Breathe normally.",
					"Next, tense your calf muscles for 5 seconds.",
					"Release and notice the sensation of relaxation.",
					"Continue this pattern up through your body: thighs, abdomen, chest, hands, arms, shoulders, neck, and face.",
					"Finally, take a deep breath and notice how your body feels now.",
				},
			},
			{
				Name:        "Worry Time",
				Description: "Schedule a specific time to address worries, reducing their impact throughout the day.",
				Steps: []string{
					"Choose a 15-minute 'worry time' each day (not right before bed).",
					"When worries arise outside this time, write them down to address later.",
					"During your designated worry time, review your list and address each concern.",
					"For each worry, ask: Is this within my control? What's one small step I could take?",
					"After your worry time ends, put the list away until tomorrow.",
					"This practice helps contain worry to a specific time rather than all day.",
				},
			},
			{
				Name:        "Thought Challenging",
				Description: "Identify and challenge anxious thoughts using evidence and alternative perspectives.",
				Steps: []string{
					"Identify a specific thought that's making you anxious.",
					"Rate how strongly you believe this thought (0-100%).",
					"What evidence supports this thought?",
					"What evidence contradicts this thought?",
					"Is there an alternative explanation or perspective?",
					"What would you tell a friend who had this thought?",
					"How would you reframe this thought in a more balanced way?",
					"Rate how strongly you believe the original thought now (0-100%).",
				},
			},
		},
	},
	{
		ID:          "mood",
		Name:        "Mood Lifting",
		Description: "Strategies to improve mood and counter low periods",
		Exercises: []Exercise{
			{
				Name:        "Behavioral Activation",
				Description: "Engage in meaningful activities to improve mood even when motivation is low.",
				Steps: []string{
					"Make a list of activities that typically bring you joy or satisfaction.",
					"Rate each activity by difficulty (1-10) and potential satisfaction (1-10).",
					"Start with activities that are lower in difficulty but higher in satisfaction.",
					"Schedule one such activity for tomorrow, being specific about when and how.",
					"After completing the activity, note how you felt before, during, and after.",
					"Gradually increase the number and difficulty of activities as you progress.",
				},
			},
			{
				Name:        "Gratitude Practice",
				Description: "Focus on positive aspects of life to shift attention from negative thoughts.",
				Steps: []string{
					"Take a few deep breaths to center yourself.",
					"Think of three specific things you're grateful for today, no matter how small.",
					"For each one, write down what it is and why you appreciate it.",
					"Try to include different areas of life (people, experiences, abilities, etc.).",
					"Notice any feelings that arise as you reflect on these positive elements.",
				},
			},
			{
				Name:        "Values Reflection",
				Description: "Reconnect with your core values to find meaning and direction.",
				Steps: []string{
					"Consider different life domains: relationships, work, personal growth, leisure, etc.",
					"For each domain, ask: What matters most to me in this area?",
					"Choose one value that feels most important to you right now.",
					"Reflect on how you can express this value today, even in a small way.",
					"Plan one specific action aligned with this value for tomorrow.",
				},
			},
			{
				Name:        "Positive Memory Bank",
				Description: "Build a collection of positive memories to counter negative thought patterns.",
				Steps: []string{
					"Recall a positive memory where you felt happy, proud, or connected.",
					"Write down the memory in detail using all five senses.",
					"What were you seeing, hearing, feeling, smelling, and tasting?",
					"Notice the emotions connected to this memory.",
					"Take a moment to fully re-experience this positive memory.",
					"Add this to your 'memory bank' to revisit when negative thoughts arise.",
				},
			},
		},
	},
	{
		ID:          "stress",
		Name:        "Stress Management",
		Description: "Techniques to reduce and cope with stress",
		Exercises: []Exercise{
			{
				Name:        "Box Breathing",
				Description: "A simple breathing technique to calm the nervous system.",
				Steps: []string{
					"Find a comfortable seated position.",
					"Breathe in through your nose for a count of 4.",
					"Hold your breath for a count of 4.",
					"Exhale through your mouth for a count of 4.",
					"Hold your breath (lungs empty) for a count of 4.",
					"Repeat this cycle 5-10 times.",
					"Notice how your body and mind feel afterward.",
				},
			},
			{
				Name:        "Body Scan",
				Description: "A mindfulness practice to release tension and increase body awareness.",
				Steps: []string{
					"Lie down or sit in a comfortable position and close your eyes.",
					"Begin by bringing awareness to your feet. Notice any sensations without judgment.",
					"Slowly move your attention up through your body: legs, hips, abdomen, chest, etc.",
					"For each area, notice sensations and consciously release any tension.",
					"If you find areas of discomfort, breathe into them without trying to change anything.",
					"When you reach the top of your head, take a moment to feel your whole body.",
					"Take a deep breath, and when ready, gently open your eyes.",
				},
			},
			{
				Name:        "Stress Diary",
				Description: "Track stress triggers and responses to identify patterns and develop strategies.",
				Steps: []string{
					"Create a log with columns for: Situation, Stress Level (1-10), Physical Sensations, Thoughts, Behaviors, and Coping Strategy.",
					"For each stressful event, record all these elements.",
					"After a week, review your diary and look for patterns in triggers and responses.",
					"Identify which coping strategies were most effective.",
					"Based on your observations, create a personalized stress management plan.",
				},
			},
			{
				Name:        "Priority Matrix",
				Description: "Organize tasks to reduce overwhelm and increase productivity.",
				Steps: []string{
					"Draw a 2x2 grid with axes of 'Urgent' and 'Important'.",
					"List all your current tasks and responsibilities.",
					"Place each task in the appropriate quadrant: Urgent & Important, Important but Not Urgent, Urgent but Not Important, Neither Urgent nor Important.",
					"Focus first on tasks that are both urgent and important.",
					"Schedule time for important but not urgent tasks (these often prevent future stress).",
					"Delegate or minimize time spent on urgent but not important tasks.",
					"Eliminate or drastically reduce tasks that are neither urgent nor important.",
				},
			},
		},
	},
	{
		ID:          "sleep",
		Name:        "Sleep Improvement",
		Description: "Strategies for better sleep quality and quantity",
		Exercises: []Exercise{
			{
				Name:        "Sleep Hygiene Assessment",
				Description: "Evaluate and improve your sleep environment and routines.",
				Steps: []string{
					"Assess your bedroom: Is it dark, quiet, cool, and comfortable?",
					"Review your bedtime routine: Do you wind down for 30-60 minutes before sleep?",
					"Check your daytime habits: Exercise timing, caffeine, alcohol, and screen use.",
					"Evaluate your sleep schedule: Are you consistent with sleep and wake times?",
					"For each area, identify one improvement you can make tonight.",
					"Implement these changes and track their impact on your sleep quality.",
				},
			},
			{
				Name:        "Progressive Relaxation for Sleep",
				Description: "A body relaxation technique specifically for bedtime.",
				Steps: []string{
					"Lie in bed in a comfortable position for sleep.",
					"Take three deep breaths, exhaling slowly each time.",
					"Beginning with your toes, tense and then completely relax each muscle group.",
					"Work your way up through your body: feet, legs, hips, abdomen, chest, hands, arms, shoulders, neck, and face.",
					"After completing the full body, imagine a wave of relaxation flowing from your head to your toes.",
					"Now allow yourself to drift toward sleep, returning to the breath if your mind wanders.",
				},
			},
			{
				Name:        "Worry Download",
				Description: "Clear your mind of concerns before bedtime to prevent racing thoughts.",
				Steps: []string{
					"30-60 minutes before bedtime, take out a piece of paper.",
					"Write down everything that's on your mind or worrying you.",
					"For each item, briefly note one step you can take tomorrow (or when appropriate).",
					"Symbolically 'put away' these concerns by folding the paper and setting it aside until morning.",
					"During your bedtime routine, if worries return, remind yourself they're written down and can be addressed tomorrow.",
				},
			},
			{
				Name:        "Sleep Restriction",
				Description: "Temporarily limit time in bed to build stronger sleep drive and consolidate sleep.",
				Steps: []string{
					"Track your actual sleep time (not just time in bed) for one week.",
					"Calculate your average sleep time (e.g., 6 hours).",
					"Set a consistent wake-up time every day of the week.",
					"Count backward from your wake time to set your bedtime (e.g., if wake at 7am and average 6 hours, bedtime is 1am).",
					"Only go to bed when sleepy, and get out of bed if you can't sleep after 20 minutes.",
					"Maintain this schedule for a week, then increase time in bed by 15-30 minutes if sleep efficiency is over 85%.",
					"Continue until you reach your optimal sleep duration.",
				},
			},
		},
	},
}
