package app

import (
	"log/slog"
	"time"

	"swayn-kiosk/internal/domain"
	"swayn-kiosk/internal/feedback"
	"swayn-kiosk/internal/nav"
	"swayn-kiosk/internal/quiz"
	"swayn-kiosk/internal/schedule"
)

// Timing holds the animation delays of a visit. Zero values use the defaults.
type Timing struct {
	PageExit     time.Duration
	PageEnter    time.Duration
	AnswerSettle time.Duration
	IntroStep    time.Duration
}

// Settings configure every visit a Service opens.
type Settings struct {
	Timing   Timing
	Playlist []string
	Muted    bool
}

// Kiosk is the whole state of one visit: current page, onboarding, the quiz
// run and the payloads carried between pages. It is not safe for concurrent
// use; every call must happen on the goroutine that owns its scheduler.
type Kiosk struct {
	catalog  domain.Catalog
	logger   *slog.Logger
	listener func(Snapshot)

	nav      *nav.Controller
	intro    *nav.Intro
	engine   *quiz.Engine
	playlist *feedback.Playlist

	quizMounted bool
	result      *domain.Category
	userName    string
	muted       bool
}

// NewKiosk opens a visit on the invitation page. listener receives a
// snapshot after every state change, including timer-driven ones.
func NewKiosk(catalog domain.Catalog, scheduler schedule.Scheduler, cues feedback.Delegate, settings Settings, listener func(Snapshot), logger *slog.Logger) *Kiosk {
	if cues == nil {
		cues = feedback.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	k := &Kiosk{
		catalog:  catalog,
		logger:   logger,
		listener: listener,
		playlist: feedback.NewPlaylist(settings.Playlist),
		muted:    settings.Muted,
	}
	gated := feedback.Gate(cues, func() bool { return k.muted })

	t := settings.Timing
	k.engine = quiz.NewEngine(catalog.Questions, scheduler, gated, t.AnswerSettle, k.quizComplete)
	k.engine.OnChange(k.publish)
	k.intro = nav.NewIntro(scheduler, gated, t.IntroStep)
	k.intro.OnChange(k.publish)
	k.nav = nav.NewController(domain.ScreenInvitation, scheduler, gated, t.PageExit, t.PageEnter, nav.Hooks{
		Swap:   k.swap,
		Change: k.publish,
	})
	return k
}

// swap mounts and unmounts page state when the exit animation finishes.
func (k *Kiosk) swap(from, to domain.Screen) {
	switch from {
	case domain.ScreenQuiz:
		k.engine.Close()
		k.quizMounted = false
	case domain.ScreenQuizIntro:
		k.intro.Close()
	case domain.ScreenResult:
		k.result = nil
	}
	switch to {
	case domain.ScreenQuiz:
		k.engine.Reset()
		k.quizMounted = true
	case domain.ScreenQuizIntro:
		k.intro.Reset()
	}
	k.logger.Debug("page changed", "from", from, "to", to)
}

func (k *Kiosk) changePage(target domain.Screen) bool {
	accepted := k.nav.Request(target)
	if accepted {
		k.publish()
	}
	return accepted
}

func (k *Kiosk) GoToQuizIntro() bool { return k.changePage(domain.ScreenQuizIntro) }

func (k *Kiosk) BeginQuiz() bool { return k.changePage(domain.ScreenQuiz) }

// QuizComplete moves to the result page carrying result. A result that
// settles while another page change is running is discarded.
func (k *Kiosk) QuizComplete(result domain.Category) bool {
	if !k.nav.Request(domain.ScreenResult) {
		return false
	}
	k.result = &result
	k.publish()
	return true
}

func (k *Kiosk) RetryQuiz() bool { return k.changePage(domain.ScreenQuiz) }

func (k *Kiosk) GoHome() bool { return k.changePage(domain.ScreenInvitation) }

func (k *Kiosk) GoToLocation() bool { return k.changePage(domain.ScreenLocation) }

func (k *Kiosk) quizComplete(result domain.Category) {
	k.logger.Info("quiz complete", "result", result, "named", k.userName != "")
	k.QuizComplete(result)
}

// SubmitAnswer picks option index i of the question on screen. Input that
// arrives off the quiz page, mid page transition or after the last answer
// is ignored.
func (k *Kiosk) SubmitAnswer(i int) (bool, error) {
	if !k.quizMounted || k.nav.Busy() {
		return false, nil
	}
	if _, done := k.engine.Result(); done {
		return false, nil
	}
	options := k.engine.Question().Options
	if i < 0 || i >= len(options) {
		return false, domain.ErrOptionNotFound
	}
	accepted := k.engine.Submit(options[i])
	if accepted {
		k.publish()
	}
	return accepted, nil
}

// GoBack undoes the last answer, or leaves for the intro on the first question.
func (k *Kiosk) GoBack() bool {
	if !k.quizMounted || k.nav.Busy() {
		return false
	}
	before := k.engine.Index()
	if k.engine.Back() {
		return k.GoToQuizIntro()
	}
	if k.engine.Index() != before {
		k.publish()
		return true
	}
	return false
}

// IntroNext advances the onboarding; on the last step it begins the quiz.
func (k *Kiosk) IntroNext() bool {
	if k.nav.Current() != domain.ScreenQuizIntro || k.nav.Busy() {
		return false
	}
	before := k.intro.Step()
	if k.intro.Next() {
		return k.BeginQuiz()
	}
	if k.intro.Step() != before {
		k.publish()
		return true
	}
	return false
}

// IntroSubmitName stores the visitor's name. Blank names are ignored.
func (k *Kiosk) IntroSubmitName(name string) bool {
	if k.nav.Current() != domain.ScreenQuizIntro || k.nav.Busy() {
		return false
	}
	if !k.intro.SubmitName(name) {
		return false
	}
	k.userName = name
	k.publish()
	return true
}

// IntroSkip drops any name and begins the quiz.
func (k *Kiosk) IntroSkip() bool {
	if k.nav.Current() != domain.ScreenQuizIntro || k.nav.Busy() {
		return false
	}
	if !k.intro.Skip() {
		return false
	}
	k.userName = ""
	return k.BeginQuiz()
}

// ToggleMute flips sound output and reports the new state.
func (k *Kiosk) ToggleMute() bool {
	k.muted = !k.muted
	k.publish()
	return k.muted
}

// AudioFailed moves background music to the next source in the playlist.
func (k *Kiosk) AudioFailed() (string, bool) {
	next, ok := k.playlist.Fail()
	if ok {
		k.logger.Warn("background music source failed, trying next", "source", next)
	} else {
		k.logger.Error("all background music sources failed")
	}
	k.publish()
	return next, ok
}

// Close cancels every pending timer of the visit.
func (k *Kiosk) Close() {
	k.engine.Close()
	k.intro.Close()
	k.nav.Close()
}

func (k *Kiosk) UserName() string { return k.userName }

// Result returns the category carried to the result page, if any.
func (k *Kiosk) Result() (domain.Category, bool) {
	if k.result == nil {
		return "", false
	}
	return *k.result, true
}

func (k *Kiosk) Catalog() domain.Catalog { return k.catalog }

// Snapshot renders the current state for a front end.
func (k *Kiosk) Snapshot() Snapshot {
	screen := k.nav.Current()
	s := Snapshot{
		Screen:  screen,
		Phase:   k.nav.Phase(),
		Target:  k.nav.Target(),
		ShowNav: screen.ShowsNav(),
		Muted:   k.muted,
		Music:   k.playlist.Current(),
	}
	switch screen {
	case domain.ScreenQuizIntro:
		s.Intro = &IntroView{
			Step:    k.intro.Step(),
			Locked:  k.intro.Locked(),
			CanSkip: k.intro.Step() != domain.StepWelcome,
			Name:    k.userName,
		}
	case domain.ScreenQuiz:
		if k.quizMounted {
			number, total := k.engine.Progress()
			s.Quiz = &QuizView{
				Number:   number,
				Total:    total,
				Percent:  float64(number) / float64(total) * 100,
				Locked:   k.engine.Locked(),
				Question: k.engine.Question(),
			}
		}
	case domain.ScreenResult:
		if k.result != nil {
			view := AssembleResult(k.catalog, *k.result, k.userName)
			s.Result = &view
		}
	case domain.ScreenLocation:
		venue := k.catalog.Venue
		s.Venue = &venue
	}
	return s
}

func (k *Kiosk) publish() {
	if k.listener != nil {
		k.listener(k.Snapshot())
	}
}
