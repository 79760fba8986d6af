package app

import "swayn-kiosk/internal/domain"

// Snapshot is the view state pushed to a front end after every change.
type Snapshot struct {
	Screen  domain.Screen `json:"screen"`
	Phase   domain.Phase  `json:"phase"`
	Target  domain.Screen `json:"target,omitempty"`
	ShowNav bool          `json:"showNav"`
	Muted   bool          `json:"muted"`
	Music   string        `json:"music,omitempty"`
	Intro   *IntroView    `json:"intro,omitempty"`
	Quiz    *QuizView     `json:"quiz,omitempty"`
	Result  *ResultView   `json:"result,omitempty"`
	Venue   *domain.Venue `json:"venue,omitempty"`
}

// IntroView describes the onboarding step on screen.
type IntroView struct {
	Step    domain.IntroStep `json:"step"`
	Locked  bool             `json:"locked"`
	CanSkip bool             `json:"canSkip"`
	Name    string           `json:"name,omitempty"`
}

// QuizView describes the question on screen.
type QuizView struct {
	Number   int             `json:"number"`
	Total    int             `json:"total"`
	Percent  float64         `json:"percent"`
	Locked   bool            `json:"locked"`
	Question domain.Question `json:"question"`
}
