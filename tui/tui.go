// Package tui draws the portfolio in a terminal. It drives the same coordinator, loading
// indicator, readiness gate, controls and project expansion state as the windowed front end, so a
// section chosen here behaves exactly as one chosen from the navigation bar.
package tui

import (
	"context"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-portfolio/content"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio/panels"
	"github.com/gdamore/tcell/v2"
)

// frameInterval is how often Run redraws.
const frameInterval = 16 * time.Millisecond

// UI is the terminal front end. HandleEvent and Draw are safe to call from any goroutine; Run
// serialises them itself.
type UI struct {
	mu *sync.Mutex

	screen tcell.Screen
	data   content.Data
	skills panels.SkillsData

	coord     portfolio.Coordinator
	loading   portfolio.LoadingIndicator
	readiness *portfolio.Readiness
	controls  *portfolio.Controls
	links     portfolio.LinkOpener
	expand    *panels.ExpandState

	// cursor is the highlighted row per section: a link on welcome, a category on skills, a card
	// on experience and projects, a podium on achievements.
	cursor map[portfolio.Section]int
}

// NewUI creates the terminal front end for data on an initialised screen.
//
// Parameters:
//   - screen: the tcell screen, already initialised
//   - data: the validated content
//   - options: functional options to configure the UI
//
// Returns:
//   - *UI: the terminal front end
func NewUI(screen tcell.Screen, data content.Data, options ...UIOption) *UI {
	if screen == nil {
		panic("tui: screen is required")
	}
	u := &UI{
		mu:     &sync.Mutex{},
		screen: screen,
		data:   data,
		skills: panels.NewSkillsData(data.Skills),
		cursor: make(map[portfolio.Section]int, len(portfolio.Sections)),
	}
	for _, opt := range options {
		opt(u)
	}
	if u.coord == nil {
		u.coord = portfolio.NewCoordinator()
	}
	if u.loading == nil {
		u.loading = portfolio.NewLoadingIndicator()
	}
	if u.controls == nil {
		u.controls = portfolio.NewControls()
	}
	if u.links == nil {
		u.links = portfolio.NewBrowserOpener("")
	}
	u.expand = panels.NewExpandState()
	u.readiness = portfolio.NewReadiness(u.loading, u.coord)
	return u
}

// Coordinator returns the section coordinator the UI drives.
func (u *UI) Coordinator() portfolio.Coordinator {
	return u.coord
}

// Controls returns the mute and info state.
func (u *UI) Controls() *portfolio.Controls {
	return u.controls
}

// Expand returns the project expansion state.
func (u *UI) Expand() *panels.ExpandState {
	return u.expand
}

// Ready reports whether the loading screen has been dismissed.
func (u *UI) Ready() bool {
	return u.readiness.Ready()
}

// Run starts the loading indicator and redraws until the user quits or ctx is cancelled. The
// caller owns the screen and finalises it afterwards, which also stops the event reader.
//
// Parameters:
//   - ctx: cancelling it stops the UI
//
// Returns:
//   - error: always nil, reserved for screen failures
func (u *UI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	u.loading.Start(ctx)
	defer u.loading.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	u.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if u.HandleEvent(ev) {
				return nil
			}
			u.Draw()
		case <-ticker.C:
			u.Draw()
		}
	}
}

// HandleEvent applies one terminal event.
//
// Parameters:
//   - ev: the tcell event
//
// Returns:
//   - bool: true when the user asked to quit
func (u *UI) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventKey:
		return u.handleKey(ev)
	}
	return false
}

func (u *UI) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		if u.controls.InfoVisible() {
			u.controls.CloseInfo()
			return false
		}
		return true
	case tcell.KeyRight, tcell.KeyTab:
		u.coord.SelectSection(u.coord.Current().Step(1))
	case tcell.KeyLeft, tcell.KeyBacktab:
		u.coord.SelectSection(u.coord.Current().Step(-1))
	case tcell.KeyUp:
		u.moveCursor(-1)
	case tcell.KeyDown:
		u.moveCursor(1)
	case tcell.KeyEnter:
		u.activate()
	case tcell.KeyRune:
		return u.handleRune(ev.Rune())
	}
	return false
}

func (u *UI) handleRune(r rune) bool {
	switch {
	case r >= '1' && r <= '5':
		u.coord.SelectSection(portfolio.Sections[r-'1'])
	case r == 'q':
		return true
	case r == 'm':
		u.controls.ToggleMute()
	case r == 'i':
		u.controls.ToggleInfo()
	case r == 'o':
		u.openCurrent()
	}
	return false
}

// rows returns how many selectable rows section s has.
func (u *UI) rows(s portfolio.Section) int {
	switch s {
	case portfolio.SectionWelcome:
		return len(u.data.Links)
	case portfolio.SectionSkills:
		return u.skills.Faces()
	case portfolio.SectionExperience:
		return len(u.data.Experience)
	case portfolio.SectionProjects:
		return len(u.data.Projects)
	case portfolio.SectionAchievements:
		return len(u.data.Achievements)
	}
	return 0
}

func (u *UI) moveCursor(delta int) {
	s := u.coord.Current()
	n := u.rows(s)
	if n == 0 {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.cursor[s] = ((u.cursor[s]+delta)%n + n) % n
}

// Cursor returns the highlighted row of section s.
func (u *UI) Cursor(s portfolio.Section) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cursor[s]
}

// activate is Enter: it opens the highlighted welcome link and toggles the highlighted project.
func (u *UI) activate() {
	switch s := u.coord.Current(); s {
	case portfolio.SectionWelcome:
		u.openCurrent()
	case portfolio.SectionProjects:
		if u.rows(s) > 0 {
			u.expand.Toggle(u.Cursor(s))
		}
	}
}

// openCurrent opens the highlighted welcome link or project link.
func (u *UI) openCurrent() {
	s := u.coord.Current()
	i := u.Cursor(s)
	switch s {
	case portfolio.SectionWelcome:
		if i < len(u.data.Links) {
			u.links.Open(u.data.Links[i].URL)
		}
	case portfolio.SectionProjects:
		if i < len(u.data.Projects) && u.data.Projects[i].Link != "" {
			u.links.Open(u.data.Projects[i].Link)
		}
	}
}
