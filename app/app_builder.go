package app

import (
	"github.com/Carmen-Shannon/oxy-portfolio/engine/audio"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio"
)

// PortfolioOption is a functional option for configuring a Portfolio.
type PortfolioOption func(*Portfolio)

// WithLinkOpener replaces the browser opener used for outbound links.
//
// Parameters:
//   - opener: the link opener
//
// Returns:
//   - PortfolioOption: the option to apply
func WithLinkOpener(opener portfolio.LinkOpener) PortfolioOption {
	return func(p *Portfolio) {
		p.links = opener
	}
}

// WithAudio replaces the audio engine built from the configuration.
//
// Parameters:
//   - a: the audio engine
//
// Returns:
//   - PortfolioOption: the option to apply
func WithAudio(a audio.Audio) PortfolioOption {
	return func(p *Portfolio) {
		p.Audio = a
	}
}

// WithLoadingIndicator replaces the default loading indicator.
//
// Parameters:
//   - l: the loading indicator
//
// Returns:
//   - PortfolioOption: the option to apply
func WithLoadingIndicator(l portfolio.LoadingIndicator) PortfolioOption {
	return func(p *Portfolio) {
		p.Loading = l
	}
}

// WithQuit sets the function Escape calls when no overlay is open.
//
// Parameters:
//   - fn: the quit function
//
// Returns:
//   - PortfolioOption: the option to apply
func WithQuit(fn func()) PortfolioOption {
	return func(p *Portfolio) {
		p.quit = fn
	}
}
