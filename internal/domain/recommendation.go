package domain

import (
	"fmt"
	"time"
)

// Profile is the questionnaire a user fills in before requesting a
// personalized plan.
type Profile struct {
	Age            int      `json:"age"`
	Gender         string   `json:"gender"`
	ActivityLevel  string   `json:"activityLevel"`
	Problem        string   `json:"problem"`
	Severity       string   `json:"severity"`
	Experience     string   `json:"experience"` // beginner, intermediate, advanced
	TimeAvailable  int      `json:"timeAvailable"`
	TimeOfDay      string   `json:"timeOfDay"`
	DaysPerWeek    int      `json:"daysPerWeek"`
	Styles         []Style  `json:"styles"`
	Injuries       string   `json:"injuries"`
	AdditionalInfo string   `json:"additionalInfo"`
	Date           time.Time `json:"date"`
}

// PlannedSession is one day of a generated wellness plan.
type PlannedSession struct {
	Day             int        `json:"day"`
	Title           string     `json:"title"`
	Style           Style      `json:"style"`
	DurationMinutes int        `json:"duration"`
	Description     string     `json:"description"`
	Exercises       []Exercise `json:"exercises"`
}

// Recommendation is a stored generated plan.
type Recommendation struct {
	UserEmail string           `json:"userEmail"`
	ID        string           `json:"id"`
	Profile   Profile          `json:"profile"`
	Sessions  []PlannedSession `json:"sessions"`
	Created   time.Time        `json:"created"`
	Completed []int            `json:"completed"`
}

const planDays = 7

var sessionTitles = map[Style]map[string]string{
	StyleYoga: {
		"beginner":     "Gentle Yoga Flow",
		"intermediate": "Vinyasa Yoga Practice",
		"advanced":     "Power Yoga Session",
	},
	StyleMeditation: {
		"beginner":     "Guided Mindfulness",
		"intermediate": "Deep Meditation",
		"advanced":     "Advanced Contemplation",
	},
	StyleStretching: {
		"beginner":     "Basic Stretching",
		"intermediate": "Full Body Stretch",
		"advanced":     "Advanced Flexibility",
	},
	StyleBreathing: {
		"beginner":     "Relaxing Breath Work",
		"intermediate": "Pranayama Practice",
		"advanced":     "Advanced Breathing Techniques",
	},
	StyleStrength: {
		"beginner":     "Bodyweight Strength",
		"intermediate": "Resistance Training",
		"advanced":     "Intensive Strength Workout",
	},
	StyleCardio: {
		"beginner":     "Light Cardio",
		"intermediate": "Moderate Cardio",
		"advanced":     "High Intensity Cardio",
	},
}

var sessionDescriptions = map[Style]string{
	StyleYoga:       "Improve flexibility, strength, and mental clarity with this yoga session.",
	StyleMeditation: "Calm your mind and reduce stress with guided meditation practices.",
	StyleStretching: "Increase mobility and reduce tension through targeted stretching.",
	StyleBreathing:  "Enhance your breath control and relaxation through breathing exercises.",
	StyleStrength:   "Build functional strength with bodyweight exercises.",
	StyleCardio:     "Boost cardiovascular health with energizing movements.",
}

// GeneratePlan builds a 7-day plan from the profile. It is deterministic:
// styles rotate through the profile's selections, titles and descriptions
// are keyed by style and experience level, and each day splits its duration
// across three exercises.
func GeneratePlan(p Profile) []PlannedSession {
	duration := p.TimeAvailable
	if duration <= 0 {
		duration = DefaultDurationMinutes
	}
	styles := p.Styles
	if len(styles) == 0 {
		styles = []Style{StyleYoga, StyleStretching}
	}

	plan := make([]PlannedSession, 0, planDays)
	for day := 1; day <= planDays; day++ {
		style := styles[day%len(styles)]
		plan = append(plan, PlannedSession{
			Day:             day,
			Title:           planTitle(style, p.Experience),
			Style:           style,
			DurationMinutes: duration,
			Description:     planDescription(style),
			Exercises:       planExercises(style, duration),
		})
	}
	return plan
}

func planTitle(style Style, experience string) string {
	if byLevel, ok := sessionTitles[style]; ok {
		if title, ok := byLevel[experience]; ok {
			return title
		}
	}
	return fmt.Sprintf("%s Session", style)
}

func planDescription(style Style) string {
	if d, ok := sessionDescriptions[style]; ok {
		return d
	}
	return "A personalized wellness session designed for you."
}

func planExercises(style Style, duration int) []Exercise {
	per := duration / 3
	exercises := make([]Exercise, 3)
	for i := range exercises {
		exercises[i] = Exercise{
			Name:            fmt.Sprintf("%s Exercise %d", style, i+1),
			DurationMinutes: per,
			Instructions:    fmt.Sprintf("Focus on %s techniques for %d minutes.", style, per),
		}
	}
	return exercises
}
