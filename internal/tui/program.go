package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"swayn-kiosk/internal/app"
)

// Run shows visit in the terminal until the user quits or the visit ends.
func Run(ctx context.Context, visit *app.Visit, opts ...tea.ProgramOption) error {
	updates, cancel, err := visit.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	defer cancel()

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(NewModel(ctx, visit, updates), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
