package tui

import "github.com/Carmen-Shannon/oxy-portfolio/portfolio"

// UIOption is a functional option for configuring a UI.
type UIOption func(*UI)

// WithCoordinator drives an existing coordinator instead of a new one starting on welcome.
//
// Parameters:
//   - coord: the coordinator
//
// Returns:
//   - UIOption: the option to apply
func WithCoordinator(coord portfolio.Coordinator) UIOption {
	return func(u *UI) {
		u.coord = coord
	}
}

// WithLoadingIndicator replaces the default loading indicator.
//
// Parameters:
//   - l: the loading indicator
//
// Returns:
//   - UIOption: the option to apply
func WithLoadingIndicator(l portfolio.LoadingIndicator) UIOption {
	return func(u *UI) {
		u.loading = l
	}
}

// WithControls shares mute and info state with another front end.
//
// Parameters:
//   - c: the controls
//
// Returns:
//   - UIOption: the option to apply
func WithControls(c *portfolio.Controls) UIOption {
	return func(u *UI) {
		u.controls = c
	}
}

// WithLinkOpener replaces the browser opener used for links.
//
// Parameters:
//   - opener: the link opener
//
// Returns:
//   - UIOption: the option to apply
func WithLinkOpener(opener portfolio.LinkOpener) UIOption {
	return func(u *UI) {
		u.links = opener
	}
}
