// Package resources holds the built-in crisis hotline directory, self-help
// catalog, reading list, and facts shown by the resources commands.
package resources

import (
	"math/rand"
	"strings"
	"sync"
)

// Hotline is one crisis support line.
type Hotline struct {
	Name        string
	Number      string
	Website     string
	Description string
}

// SelfHelp is one online self-help resource with searchable tags.
type SelfHelp struct {
	Name        string
	Website     string
	Description string
	Tags        []string
}

// Book is one reading recommendation.
type Book struct {
	Title       string
	Author      string
	Description string
}

// Library serves resource lookups. Random selections go through a single
// guarded source so a seeded library is deterministic.
type Library struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLibrary creates a Library drawing random choices from the given source.
func NewLibrary(rng *rand.Rand) *Library {
	return &Library{rng: rng}
}

// CrisisHotlines returns the hotlines for a country key ("us", "uk", ...).
// Unknown or empty countries return every directory entry.
func (l *Library) CrisisHotlines(country string) map[string][]Hotline {
	key := strings.ToLower(country)
	if lines, ok := crisisHotlines[key]; ok {
		return map[string][]Hotline{key: lines}
	}
	return crisisHotlines
}

// GlobalCrisisResource is always shown alongside country hotlines.
func (l *Library) GlobalCrisisResource() Hotline {
	return globalCrisisResource
}

// SelfHelpResources returns resources filtered by tag, or a random selection
// when tag is empty. Tag matching is case-insensitive.
func (l *Library) SelfHelpResources(tag string, limit int) []SelfHelp {
	if limit <= 0 {
		limit = 5
	}
	if tag != "" {
		var filtered []SelfHelp
		for _, r := range selfHelpResources {
			for _, t := range r.Tags {
				if strings.EqualFold(t, tag) {
					filtered = append(filtered, r)
					break
				}
			}
		}
		if len(filtered) > limit {
			filtered = filtered[:limit]
		}
		return filtered
	}

	shuffled := make([]SelfHelp, len(selfHelpResources))
	copy(shuffled, selfHelpResources)
	l.mu.Lock()
	l.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	l.mu.Unlock()
	if len(shuffled) > limit {
		shuffled = shuffled[:limit]
	}
	return shuffled
}

// ReadingRecommendations returns books for a category, or a random selection
// across all categories when category is empty or unknown.
func (l *Library) ReadingRecommendations(category string, limit int) []Book {
	if limit <= 0 {
		limit = 3
	}
	if books, ok := readingRecommendations[strings.ToLower(category)]; ok {
		if len(books) > limit {
			books = books[:limit]
		}
		return books
	}

	var all []Book
	for _, books := range readingRecommendations {
		all = append(all, books...)
	}
	l.mu.Lock()
	l.rng.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	l.mu.Unlock()
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// ReadingCategories lists the known reading list categories.
func (l *Library) ReadingCategories() []string {
	return []string{"anxiety", "depression", "mindfulness", "sleep", "self_compassion"}
}

// RandomFact returns one destigmatizing wellbeing fact.
func (l *Library) RandomFact() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return mentalHealthFacts[l.rng.Intn(len(mentalHealthFacts))]
}

var globalCrisisResource = Hotline{
	Name:        "International Association for Suicide Prevention",
	Website:     "https://www.iasp.info/resources/Crisis_Centres/",
	Description: "Directory of crisis centers around the world.",
}

var crisisHotlines = map[string][]Hotline{
	"us": {
		{
			Name:        "National Suicide Prevention Lifeline",
			Number:      "988 or 1-800-273-8255",
			Website:     "https://988lifeline.org/",
			Description: "24/7, free and confidential support for people in distress.",
		},
		{
			Name:        "Crisis Text Line",
			Number:      "Text HOME to 741741",
			Website:     "https://www.crisistextline.org/",
			Description: "Text-based crisis support available 24/7.",
		},
		{
			Name:        "SAMHSA's National Helpline",
			Number:      "1-800-662-4357",
			Website:     "https://www.samhsa.gov/find-help/national-helpline",
			Description: "Treatment referral and information service for individuals facing mental health or substance use disorders.",
		},
	},
	"canada": {
		{
			Name:        "Canada Suicide Prevention Service",
			Number:      "1-833-456-4566",
			Website:     "https://www.crisisservicescanada.ca/",
			Description: "Available 24/7 for anyone thinking about or affected by suicide.",
		},
		{
			Name:        "Kids Help Phone",
			Number:      "1-800-668-6868 or text CONNECT to 686868",
			Website:     "https://kidshelpphone.ca/",
			Description: "24/7 support service for youth.",
		},
	},
	"uk": {
		{
			Name:        "Samaritans",
			Number:      "116 123",
			Website:     "https://www.samaritans.org/",
			Description: "24/7 support line for anyone in emotional distress.",
		},
		{
			Name:        "CALM (Campaign Against Living Miserably)",
			Number:      "0800 58 58 58",
			Website:     "https://www.thecalmzone.net/",
			Description: "Support for men in the UK, targeted at reducing male suicide.",
		},
	},
	"australia": {
		{
			Name:        "Lifeline Australia",
			Number:      "13 11 14",
			Website:     "https://www.lifeline.org.au/",
			Description: "24/7 crisis support and suicide prevention services.",
		},
		{
			Name:        "Beyond Blue",
			Number:      "1300 22 4636",
			Website:     "https://www.beyondblue.org.au/",
			Description: "Support for anxiety, depression, and suicide prevention.",
		},
	},
}

var selfHelpResources = []SelfHelp{
	{
		Name:        "Mindfulness-Based Stress Reduction (MBSR)",
		Website:     "https://palousemindfulness.com/",
		Description: "Free online MBSR course with guided meditations and resources.",
		Tags:        []string{"stress", "anxiety", "mindfulness", "meditation", "free"},
	},
	{
		Name:        "MoodGYM",
		Website:     "https://moodgym.com.au/",
		Description: "Interactive self-help program that teaches cognitive behavioral therapy skills for preventing and coping with depression.",
		Tags:        []string{"depression", "CBT", "mood", "interactive"},
	},
	{
		Name:        "7 Cups",
		Website:     "https://www.7cups.com/",
		Description: "Online therapy and free support with trained listeners.",
		Tags:        []string{"therapy", "support", "listening", "community", "free option"},
	},
	{
		Name:        "Insight Timer",
		Website:     "https://insighttimer.com/",
		Description: "Free meditation app with thousands of guided meditations.",
		Tags:        []string{"meditation", "sleep", "anxiety", "stress", "free"},
	},
	{
		Name:        "Mental Health America Screening Tools",
		Website:     "https://screening.mhanational.org/screening-tools/",
		Description: "Free, anonymous, and confidential mental health screenings.",
		Tags:        []string{"assessment", "screening", "depression", "anxiety", "free"},
	},
	{
		Name:        "CBT-i Coach",
		Website:     "https://mobile.va.gov/app/cbt-i-coach",
		Description: "App for insomnia management using cognitive behavioral therapy techniques.",
		Tags:        []string{"sleep", "insomnia", "CBT", "app", "free"},
	},
	{
		Name:        "ACT Coach",
		Website:     "https://www.ptsd.va.gov/appvid/mobile/actcoach_app.asp",
		Description: "Learn Acceptance and Commitment Therapy (ACT) strategies for psychological flexibility.",
		Tags:        []string{"ACT", "mindfulness", "values", "app", "free"},
	},
	{
		Name:        "Breathe2Relax",
		Website:     "https://telehealth.org/apps/behavioral/breathe2relax-mobile-app",
		Description: "Stress management tool that provides detailed information on the effects of stress on the body.",
		Tags:        []string{"breathing", "stress", "anxiety", "app", "free"},
	},
}

var readingRecommendations = map[string][]Book{
	"anxiety": {
		{
			Title:       "Dare: The New Way to End Anxiety and Stop Panic Attacks",
			Author:      "Barry McDonagh",
			Description: "A step-by-step approach to overcoming anxiety and panic attacks.",
		},
		{
			Title:       "The Anxiety and Phobia Workbook",
			Author:      "Edmund J. Bourne",
			Description: "Practical exercises and techniques to help overcome anxiety and phobias.",
		},
		{
			Title:       "The Wisdom of Anxiety",
			Author:      "Sheryl Paul",
			Description: "Explores anxiety as a messenger that can guide us toward emotional healing.",
		},
	},
	"depression": {
		{
			Title:       "Feeling Good: The New Mood Therapy",
			Author:      "David D. Burns",
			Description: "Classic book on cognitive behavioral therapy for depression.",
		},
		{
			Title:       "The Upward Spiral",
			Author:      "Alex Korb",
			Description: "Uses neuroscience to explain how small changes can lead to better moods.",
		},
		{
			Title:       "Lost Connections",
			Author:      "Johann Hari",
			Description: "Explores social and environmental causes of depression and anxiety.",
		},
	},
	"mindfulness": {
		{
			Title:       "Wherever You Go, There You Are",
			Author:      "Jon Kabat-Zinn",
			Description: "Practical guide to mindfulness meditation for beginners and experienced practitioners.",
		},
		{
			Title:       "The Miracle of Mindfulness",
			Author:      "Thich Nhat Hanh",
			Description: "Simple introduction to the practice of mindfulness in everyday life.",
		},
		{
			Title:       "Full Catastrophe Living",
			Author:      "Jon Kabat-Zinn",
			Description: "Comprehensive guide to mindfulness-based stress reduction (MBSR).",
		},
	},
	"sleep": {
		{
			Title:       "Why We Sleep",
			Author:      "Matthew Walker",
			Description: "Explores the science of sleep and offers practical advice for improving sleep quality.",
		},
		{
			Title:       "Say Good Night to Insomnia",
			Author:      "Gregg D. Jacobs",
			Description: "Six-week drug-free program to overcome insomnia.",
		},
		{
			Title:       "The Sleep Solution",
			Author:      "W. Chris Winter",
			Description: "Practical guide to solving sleep problems from a neurologist and sleep specialist.",
		},
	},
	"self_compassion": {
		{
			Title:       "Self-Compassion: The Proven Power of Being Kind to Yourself",
			Author:      "Kristin Neff",
			Description: "Research-based approach to treating yourself with the same kindness you would offer others.",
		},
		{
			Title:       "The Mindful Self-Compassion Workbook",
			Author:      "Kristin Neff and Christopher Germer",
			Description: "Practical exercises for developing self-compassion.",
		},
		{
			Title:       "The Compassionate Mind",
			Author:      "Paul Gilbert",
			Description: "Using compassion-focused therapy to treat anxiety, depression, and shame.",
		},
	},
}

var mentalHealthFacts = []string{
	"Mental health conditions are common. About 1 in 5 adults in the U.S. experiences mental illness each year.",
	"Treatment for mental health conditions is effective, with 70-90% of individuals reporting reduced symptoms and improved quality of life with proper care.",
	"Exercise has been shown to reduce symptoms of depression and anxiety, with some studies finding it as effective as medication for mild to moderate depression.",
	"Sleep and mental health are closely connected. Chronic sleep problems affect 50-80% of patients in a typical psychiatric practice.",
	"Practicing mindfulness for just 8 weeks can actually change the brain, increasing density in areas associated with learning, memory, emotion regulation, and empathy.",
	"Expressing gratitude has been shown to increase happiness, reduce depression, and help people sleep better.",
	"Social connection is one of the strongest protective factors against mental health challenges. Having supportive relationships reduces the risk of depression, anxiety, and other conditions.",
	"Mental health conditions are medical conditions, not character flaws or personal weaknesses.",
	"Recovery from mental health challenges is possible. People with mental health conditions can and do live fulfilling, productive lives.",
	"The relationship between a therapist and client (therapeutic alliance) is one of the strongest predictors of successful therapy outcomes, regardless of the type of therapy used.",
	"Many famous and successful people throughout history have lived with mental health conditions, including Abraham Lincoln, Vincent van Gogh, Demi Lovato, and Michael Phelps.",
	"Your brain releases endorphins when you laugh, which naturally reduces stress and increases feelings of wellbeing.",
	"Helping others has been shown to improve mental health by reducing stress and increasing feelings of purpose and satisfaction.",
	"The human brain can generate new neurons throughout life, a process called neurogenesis. This means positive change is always possible, regardless of age.",
	"Nature exposure for just 20 minutes has been shown to significantly lower stress hormone levels.",
	"Mental health conditions are treatable, and many people who receive appropriate care recover completely or learn to manage their symptoms effectively.",
	"Creative activities like art, music, writing, and dance can reduce stress and anxiety while increasing positive emotions.",
	"Deep breathing activates the parasympathetic nervous system, which counteracts the stress response and promotes relaxation.",
	"Pets can improve mental health by reducing stress, providing companionship, and encouraging physical activity and social interaction.",
}
