// Package tui runs a kiosk visit in the terminal, for rehearsals and for
// exhibitions without a browser.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"swayn-kiosk/internal/app"
	"swayn-kiosk/internal/domain"
)

type snapshotMsg app.Snapshot

type closedMsg struct{}

type errMsg struct{ err error }

// Model renders the snapshots of one visit and turns keys into kiosk actions.
type Model struct {
	ctx     context.Context
	visit   *app.Visit
	updates <-chan app.Snapshot

	snap     app.Snapshot
	ready    bool
	cursor   int
	name     textinput.Model
	err      error
	quitting bool
	width    int

	styles Styles
}

func NewModel(ctx context.Context, visit *app.Visit, updates <-chan app.Snapshot) Model {
	name := textinput.New()
	name.Placeholder = "이름을 입력해줘"
	name.CharLimit = 20
	return Model{
		ctx:     ctx,
		visit:   visit,
		updates: updates,
		name:    name,
		styles:  DefaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return waitForSnapshot(m.updates)
}

func waitForSnapshot(updates <-chan app.Snapshot) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return closedMsg{}
		}
		return snapshotMsg(s)
	}
}

// act runs fn on the visit's loop. The resulting state arrives as a snapshot.
func (m Model) act(fn func(k *app.Kiosk) error) tea.Cmd {
	return func() tea.Msg {
		var actionErr error
		if err := m.visit.Do(m.ctx, func(k *app.Kiosk) { actionErr = fn(k) }); err != nil {
			return errMsg{err}
		}
		if actionErr != nil {
			return errMsg{actionErr}
		}
		return nil
	}
}

func do(fn func(*app.Kiosk) bool) func(*app.Kiosk) error {
	return func(k *app.Kiosk) error {
		fn(k)
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		return m.applySnapshot(app.Snapshot(msg))
	case closedMsg:
		m.quitting = true
		return m, tea.Quit
	case errMsg:
		m.err = msg.err
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) applySnapshot(s app.Snapshot) (tea.Model, tea.Cmd) {
	prev := m.snap
	m.snap = s
	m.ready = true
	cmds := []tea.Cmd{waitForSnapshot(m.updates)}

	if s.Quiz != nil && (prev.Quiz == nil || prev.Quiz.Number != s.Quiz.Number) {
		m.cursor = 0
	}
	chat := s.Intro != nil && s.Intro.Step == domain.StepChat
	switch {
	case chat && !m.name.Focused():
		m.name.Reset()
		cmds = append(cmds, m.name.Focus())
	case !chat && m.name.Focused():
		m.name.Blur()
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.name.Focused() {
		switch {
		case msg.Type == tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case msg.Type == tea.KeyEnter:
			name := m.name.Value()
			return m, m.act(do(func(k *app.Kiosk) bool { return k.IntroSubmitName(name) }))
		case key.Matches(msg, keys.Skip):
			return m, m.act(do((*app.Kiosk).IntroSkip))
		}
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}

	if key.Matches(msg, keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, keys.Mute) {
		return m, m.act(do((*app.Kiosk).ToggleMute))
	}
	m.err = nil

	switch m.snap.Screen {
	case domain.ScreenInvitation:
		switch {
		case key.Matches(msg, keys.Next):
			return m, m.act(do((*app.Kiosk).GoToQuizIntro))
		case key.Matches(msg, keys.Location):
			return m, m.act(do((*app.Kiosk).GoToLocation))
		}
	case domain.ScreenQuizIntro:
		switch {
		case key.Matches(msg, keys.Next):
			return m, m.act(do((*app.Kiosk).IntroNext))
		case key.Matches(msg, keys.Skip):
			return m, m.act(do((*app.Kiosk).IntroSkip))
		case key.Matches(msg, keys.Home):
			return m, m.act(do((*app.Kiosk).GoHome))
		case key.Matches(msg, keys.Location):
			return m, m.act(do((*app.Kiosk).GoToLocation))
		}
	case domain.ScreenQuiz:
		return m.handleQuizKey(msg)
	case domain.ScreenResult:
		switch {
		case key.Matches(msg, keys.Retry):
			return m, m.act(do((*app.Kiosk).RetryQuiz))
		case key.Matches(msg, keys.Home):
			return m, m.act(do((*app.Kiosk).GoHome))
		case key.Matches(msg, keys.Location):
			return m, m.act(do((*app.Kiosk).GoToLocation))
		}
	case domain.ScreenLocation:
		switch {
		case key.Matches(msg, keys.Home), key.Matches(msg, keys.Back):
			return m, m.act(do((*app.Kiosk).GoHome))
		case key.Matches(msg, keys.Next):
			return m, m.act(do((*app.Kiosk).GoToQuizIntro))
		}
	}
	return m, nil
}

func (m Model) handleQuizKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.snap.Quiz == nil {
		return m, nil
	}
	options := len(m.snap.Quiz.Question.Options)
	switch {
	case key.Matches(msg, keys.Up):
		m.cursor = (m.cursor + options - 1) % options
	case key.Matches(msg, keys.Down):
		m.cursor = (m.cursor + 1) % options
	case key.Matches(msg, keys.Back):
		return m, m.act(do((*app.Kiosk).GoBack))
	case key.Matches(msg, keys.Next):
		return m, m.submit(m.cursor)
	default:
		// Digits pick an option directly.
		if r := msg.Runes; len(r) == 1 && r[0] >= '1' && int(r[0]-'1') < options {
			m.cursor = int(r[0] - '1')
			return m, m.submit(m.cursor)
		}
	}
	return m, nil
}

func (m Model) submit(option int) tea.Cmd {
	return m.act(func(k *app.Kiosk) error {
		_, err := k.SubmitAnswer(option)
		return err
	})
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.styles.Subtitle.Render("loading...")
	}

	var b strings.Builder
	switch m.snap.Screen {
	case domain.ScreenInvitation:
		b.WriteString(m.viewInvitation())
	case domain.ScreenQuizIntro:
		b.WriteString(m.viewIntro())
	case domain.ScreenQuiz:
		b.WriteString(m.viewQuiz())
	case domain.ScreenResult:
		b.WriteString(m.viewResult())
	case domain.ScreenLocation:
		b.WriteString(m.viewLocation())
	}
	if m.err != nil {
		b.WriteString("\n" + m.styles.Error.Render(m.err.Error()))
	}
	b.WriteString("\n" + m.styles.Help.Render(m.helpLine()))

	out := b.String()
	if m.snap.Phase != domain.PhaseIdle {
		out = m.styles.Locked.Render(out)
	}
	return out
}

func (m Model) helpLine() string {
	var bindings []key.Binding
	switch m.snap.Screen {
	case domain.ScreenInvitation:
		bindings = []key.Binding{keys.Next, keys.Location}
	case domain.ScreenQuizIntro:
		bindings = []key.Binding{keys.Next, keys.Skip, keys.Home}
	case domain.ScreenQuiz:
		bindings = []key.Binding{keys.Up, keys.Down, keys.Next, keys.Back}
	case domain.ScreenResult:
		bindings = []key.Binding{keys.Retry, keys.Home, keys.Location}
	case domain.ScreenLocation:
		bindings = []key.Binding{keys.Home}
	}
	bindings = append(bindings, keys.Mute, keys.Quit)

	parts := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	if m.snap.Muted {
		parts = append(parts, "(muted)")
	}
	return strings.Join(parts, " • ")
}

func (m Model) viewInvitation() string {
	return m.styles.Card.Render(
		m.styles.Title.Render("Sway'n") + "\n" +
			m.styles.Body.Render("Feel, swear, sway. 삶의 균형과 내면의 회복을 돕는 나이트 리추얼 브랜드") + "\n" +
			m.styles.Subtitle.Render("enter: 꿈 속으로 들어가기"),
	)
}

var introLines = map[domain.IntroStep]string{
	domain.StepWelcome: "테스트를 통해 Sway'n이 제안하는 맞춤형 나이트 리추얼을 만나보세요.",
	domain.StepIntro1:  "피곤한 몸을 이끌고 잠자리에 든 당신, 눈을 떠보니 신비로운 저택이 있다.",
	domain.StepIntro2:  "처음보는 손님이네, 안녕?",
	domain.StepIntro3:  "목소리가 들리는 곳을 바라보니 한 여자아이가 서 있었다.",
	domain.StepMeet:    "슈슈에게 말을 걸어보자",
	domain.StepChat:    "슈슈: 안녕? 나는 꿈의 요정 슈슈야. 네 이름이 뭐니?",
	domain.StepStory:   "슈슈: 오늘 하루도 고생 많았어. 지금부터 네가 가장 편안하게 쉴 수 있는 밤의 리추얼을 찾아줄게. 준비됐니?",
}

func (m Model) viewIntro() string {
	intro := m.snap.Intro
	if intro == nil {
		return ""
	}
	line := introLines[intro.Step]
	if intro.Step == domain.StepStory && intro.Name != "" {
		line = fmt.Sprintf("슈슈: %s, 반가워! ", intro.Name) + strings.TrimPrefix(line, "슈슈: ")
	}
	body := m.styles.Body.Render(line)
	if intro.Step == domain.StepChat {
		body += "\n\n" + m.name.View()
	}
	if intro.Locked {
		body = m.styles.Locked.Render(body)
	}
	return m.styles.Card.Render(body)
}

func (m Model) viewQuiz() string {
	quiz := m.snap.Quiz
	if quiz == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("Q%d / %d", quiz.Number, quiz.Total)) + " ")
	b.WriteString(m.styles.Bar.Render(progressBar(quiz.Percent, 20)) + "\n\n")
	b.WriteString(m.styles.Title.Render(quiz.Question.Text) + "\n")
	if quiz.Question.Description != "" {
		b.WriteString(m.styles.Subtitle.Render(quiz.Question.Description) + "\n")
	}
	for i, opt := range quiz.Question.Options {
		label := fmt.Sprintf("%d. %s", i+1, opt.Text)
		switch {
		case quiz.Locked:
			b.WriteString(m.styles.Locked.Render(m.styles.Option.Render(label)))
		case i == m.cursor:
			b.WriteString(m.styles.Selected.Render("> " + label))
		default:
			b.WriteString(m.styles.Option.Render(label))
		}
		b.WriteString("\n")
	}
	return m.styles.Card.Render(b.String())
}

func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	filled = max(0, min(filled, width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func (m Model) viewResult() string {
	r := m.snap.Result
	if r == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render(r.DisplayName+"님의 수면 타입") + "\n")
	b.WriteString(m.styles.Title.Render(r.Title) + "\n")
	b.WriteString(m.styles.Body.Render(r.Description) + "\n\n")
	b.WriteString(m.styles.Subtitle.Render("감도 ") + strings.Repeat("●", r.Sensitivity) + strings.Repeat("○", 5-r.Sensitivity) + "\n")
	for _, trait := range r.Traits {
		b.WriteString("· " + trait.Text + "\n")
	}
	if r.LuckyItem.Name != "" {
		b.WriteString("\n" + m.styles.Subtitle.Render("럭키 아이템 ") + r.LuckyItem.Name + "\n")
	}
	b.WriteString("\n" + m.styles.Subtitle.Render(r.Share.Text))
	return m.styles.Card.Render(b.String())
}

func (m Model) viewLocation() string {
	v := m.snap.Venue
	if v == nil {
		return ""
	}
	return m.styles.Card.Render(
		m.styles.Title.Render(v.Name) + "\n" +
			m.styles.Subtitle.Render(v.Subtitle) + "\n\n" +
			m.styles.Body.Render(v.Address) + "\n" +
			m.styles.Subtitle.Render(v.DirectionsURL),
	)
}
