package domain

import "time"

const (
	DefaultDurationMinutes = 30
	DefaultTitle           = "Wellness Session"
	DefaultDescription     = "Great session!"
)

// Style is an activity category. Unknown values are tolerated: they are
// stored as-is and rendered with the default icon.
type Style string

const (
	StyleYoga       Style = "yoga"
	StyleMeditation Style = "meditation"
	StyleStretching Style = "stretching"
	StyleBreathing  Style = "breathing"
	StyleStrength   Style = "strength"
	StyleCardio     Style = "cardio"
)

var styleIcons = map[Style]string{
	StyleYoga:       "🧘",
	StyleMeditation: "🧘‍♀️",
	StyleStretching: "🤸",
	StyleBreathing:  "💨",
	StyleStrength:   "💪",
	StyleCardio:     "🏃",
}

// Icon returns the display icon for the style, or a default for
// unrecognized values.
func (s Style) Icon() string {
	if icon, ok := styleIcons[s]; ok {
		return icon
	}
	return "🌸"
}

type Exercise struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration"`
	Instructions    string `json:"instructions"`
}

// Session is one completed wellness activity record owned by a user.
// Immutable once stored: the session log is append-only.
type Session struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userEmail"`
	Style           Style      `json:"style"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DurationMinutes int        `json:"duration"`
	Rating          float64    `json:"rating"`
	OccurredAt      time.Time  `json:"date"`
	Exercises       []Exercise `json:"exercises"`
}

// SessionInput carries caller-supplied fields for a new session. ID and
// OccurredAt are assigned by the store when absent.
type SessionInput struct {
	ID              string
	UserID          string
	Style           Style
	Title           string
	Description     string
	DurationMinutes int
	Rating          float64
	OccurredAt      time.Time
	Exercises       []Exercise
}

// NewSession normalizes the input into a stored session. UserID equality is
// case-sensitive throughout: "A@x.com" and "a@x.com" are distinct owners,
// matching what the persisted records already contain.
func NewSession(in SessionInput) Session {
	s := Session{
		ID:              in.ID,
		UserID:          in.UserID,
		Style:           in.Style,
		Title:           in.Title,
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		Rating:          in.Rating,
		OccurredAt:      in.OccurredAt,
		Exercises:       in.Exercises,
	}
	if s.Title == "" {
		s.Title = DefaultTitle
	}
	if s.Description == "" {
		s.Description = DefaultDescription
	}
	if s.DurationMinutes <= 0 {
		s.DurationMinutes = DefaultDurationMinutes
	}
	if s.Rating < 0 {
		s.Rating = 0
	}
	if s.Rating > 5 {
		s.Rating = 5
	}
	if s.Exercises == nil {
		s.Exercises = []Exercise{}
	}
	return s
}
