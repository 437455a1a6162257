package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/goliatone/go-contacts/pkg/render"
)

// Theme captures the lipgloss styles used when printing lists and messages.
type Theme struct {
	Title   lipgloss.Style
	Index   lipgloss.Style
	Entry   lipgloss.Style
	ID      lipgloss.Style
	Empty   lipgloss.Style
	Info    lipgloss.Style
	Error   lipgloss.Style
	Bullet  string
	ErrHint string
}

// DefaultTheme returns adaptive styles that read on light and dark terminals.
func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}),
		Index: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}),
		Entry: lipgloss.NewStyle(),
		ID: lipgloss.NewStyle().Faint(true),
		Empty: lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"}),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"}),
		Bullet:  ".",
		ErrHint: "!",
	}
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutput sets where the default survey driver prints messages.
func WithOutput(out io.Writer) Option {
	return func(s *Session) {
		if out != nil {
			s.out = out
		}
	}
}

// WithTheme applies styles to the list and to messages.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithLogger attaches a logger for session events.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRenderOptions sets the translator and locale for fixed UI strings.
func WithRenderOptions(options render.RenderOptions) Option {
	return func(s *Session) {
		s.renderOptions = options
	}
}
