package domain

import "fmt"

// Category is one of the four fixed sleep types a visitor can be matched to.
type Category string

const (
	CategoryA Category = "A"
	CategoryB Category = "B"
	CategoryC Category = "C"
	CategoryD Category = "D"
)

// Categories is the fixed enumeration order; ties fall back to it.
var Categories = []Category{CategoryA, CategoryB, CategoryC, CategoryD}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Weight is a contribution of an option towards a category.
type Weight struct {
	Category Category `json:"type" yaml:"type"`
	Score    float64  `json:"score" yaml:"score"`
}

// Option is a selectable answer. The first weight is its primary category.
type Option struct {
	Text    string   `json:"text" yaml:"text"`
	Weights []Weight `json:"types" yaml:"types"`
}

// Primary returns the category of the first weight entry.
func (o Option) Primary() Category {
	if len(o.Weights) == 0 {
		return ""
	}
	return o.Weights[0].Category
}

// Question is a single quiz step.
type Question struct {
	Text        string    `json:"text" yaml:"text"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Image       string    `json:"image" yaml:"image"`
	Background  [2]string `json:"background" yaml:"background"`
	Options     []Option  `json:"options" yaml:"options"`
}

// Product is an item recommended alongside a result.
type Product struct {
	Name        string `json:"name" yaml:"name"`
	Image       string `json:"image" yaml:"image"`
	Description string `json:"description" yaml:"description"`
}

// Trait is a short line describing a result type.
type Trait struct {
	Icon string `json:"icon" yaml:"icon"`
	Text string `json:"text" yaml:"text"`
}

// ResultMetadata is the static content shown for a category.
type ResultMetadata struct {
	Title          string    `json:"title" yaml:"title"`
	Description    string    `json:"description" yaml:"description"`
	Line           string    `json:"line" yaml:"line"`
	Sensitivity    int       `json:"sensitivity" yaml:"sensitivity"`
	Products       []Product `json:"products" yaml:"products"`
	Images         []string  `json:"images" yaml:"images"`
	CharacterImage string    `json:"characterImage" yaml:"character_image"`
	Traits         []Trait   `json:"traits" yaml:"traits"`
}

// Venue is the static content of the location page.
type Venue struct {
	Name          string `json:"name" yaml:"name"`
	Subtitle      string `json:"subtitle" yaml:"subtitle"`
	Address       string `json:"address" yaml:"address"`
	MapEmbedURL   string `json:"mapEmbedUrl" yaml:"map_embed_url"`
	DirectionsURL string `json:"directionsUrl" yaml:"directions_url"`
}

// ShareTemplates hold the share sheet texts; {title} and {line} are
// replaced with the result's title and product line.
type ShareTemplates struct {
	Title    string `json:"title" yaml:"title"`
	Text     string `json:"text" yaml:"text"`
	Fallback string `json:"fallback" yaml:"fallback"`
}

// Catalog is the immutable content of one quiz: questions and per-category results.
type Catalog struct {
	ID        string                      `json:"id" yaml:"id"`
	Questions []Question                  `json:"questions" yaml:"questions"`
	Results   map[Category]ResultMetadata `json:"results" yaml:"results"`
	Venue     Venue                       `json:"venue" yaml:"venue"`
	Share     ShareTemplates              `json:"share" yaml:"share"`
}

// ResultFor returns the metadata of c. A missing entry means the catalog
// escaped validation, which is a programming error.
func (c Catalog) ResultFor(category Category) ResultMetadata {
	meta, ok := c.Results[category]
	if !ok {
		panic(fmt.Sprintf("catalog %q has no result metadata for category %q", c.ID, category))
	}
	return meta
}

// Screen is a top-level page of the kiosk.
type Screen string

const (
	ScreenInvitation Screen = "invitation"
	ScreenQuizIntro  Screen = "quiz-intro"
	ScreenQuiz       Screen = "quiz"
	ScreenResult     Screen = "result"
	ScreenLocation   Screen = "location"
)

// ShowsNav reports whether the bottom navigation bar is visible on s.
func (s Screen) ShowsNav() bool {
	switch s {
	case ScreenInvitation, ScreenQuizIntro, ScreenLocation:
		return true
	}
	return false
}

// IntroStep is a step of the onboarding sequence on the quiz-intro screen.
type IntroStep string

const (
	StepWelcome IntroStep = "welcome"
	StepIntro1  IntroStep = "intro1"
	StepIntro2  IntroStep = "intro2"
	StepIntro3  IntroStep = "intro3"
	StepMeet    IntroStep = "meet"
	StepChat    IntroStep = "chat"
	StepStory   IntroStep = "story"
)

// Phase is the page transition phase.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseExiting  Phase = "exiting"
	PhaseEntering Phase = "entering"
)
