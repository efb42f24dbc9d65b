package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vpndeck/internal/lazy"
)

// newSpinner returns the spinner used next to loading sections.
func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return s
}

// mountSection brings a section up on screen mount: a fresh cache is served
// without fetching, otherwise the fetch starts only for auto-load sections.
func mountSection[T any](s *lazy.Section[T]) tea.Cmd {
	if s.HydrateFromCache() {
		return nil
	}
	if !s.Config().AutoLoad {
		return nil
	}
	return s.Load()
}

// sectionBusy reports whether a section state has a fetch in flight.
func sectionBusy(state lazy.State) bool {
	return state == lazy.StateLoading || state == lazy.StateRefreshing
}

// sectionSpinning reports whether a section should animate the spinner.
func sectionSpinning[T any](s *lazy.Section[T]) bool {
	return s.Config().ShowSpinner && sectionBusy(s.State())
}

// sectionPlaceholder is the text shown for an empty loaded section.
func sectionPlaceholder[T any](s *lazy.Section[T], fallback string) string {
	if p := s.Config().Placeholder; p != "" {
		return p
	}
	return fallback
}

// renderLoading renders a section's in-flight view. Sections configured with
// ShowProgress also get a bar filling toward the fetch timeout, advanced by
// the spinner tick redraws.
func renderLoading[T any](s *lazy.Section[T]) string {
	cfg := s.Config()
	line := Styles.Empty.Render(cfg.LoadingText)
	if !cfg.ShowProgress || cfg.Timeout <= 0 || s.StartedAt().IsZero() {
		return line
	}
	frac := float64(time.Since(s.StartedAt())) / float64(cfg.Timeout)
	if frac > 1 {
		frac = 1
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(24), progress.WithoutPercentage())
	return line + "\n" + bar.ViewAs(frac)
}

// renderSectionError renders a section's error view with the retry hint.
func renderSectionError(message string, err error) string {
	line := Styles.Danger.Render("Error: " + message)
	if lazy.IsTimeout(err) {
		line = Styles.Danger.Render("Timed out waiting for the backend")
	}
	return line + "\n" + Styles.Hint.Render("t retry")
}
