package tui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-portfolio/content"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio/panels"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingOpener struct {
	mu     sync.Mutex
	opened []string
}

func (r *recordingOpener) Open(target string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opened = append(r.opened, target)
}

func (r *recordingOpener) Opened() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.opened...)
}

type fixture struct {
	ui     *UI
	screen tcell.SimulationScreen
	loader portfolio.LoadingIndicator
	links  *recordingOpener
	data   content.Data
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	data, err := content.Default()
	require.NoError(t, err)
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 40)

	f := &fixture{
		screen: screen,
		loader: portfolio.NewLoadingIndicator(),
		links:  &recordingOpener{},
		data:   data,
	}
	f.ui = NewUI(screen, data, WithLoadingIndicator(f.loader), WithLinkOpener(f.links))
	return f
}

// ready finishes loading and mounts the UI with a first draw.
func (f *fixture) ready(t *testing.T) {
	t.Helper()
	for !f.loader.Done() {
		f.loader.Step()
	}
	f.ui.Draw()
	require.True(t, f.ui.Ready())
	f.ui.Draw()
}

func (f *fixture) text() string {
	w, h := f.screen.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := f.screen.GetContent(x, y)
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestLoadingScreenUntilReady(t *testing.T) {
	f := newFixture(t)

	f.ui.Draw()
	assert.Contains(t, f.text(), "LOADING PORTFOLIO")
	assert.Contains(t, f.text(), "Initializing 3D Environment 0%")
	assert.True(t, f.ui.Coordinator().Loaded(), "the first draw mounts the UI")
	assert.False(t, f.ui.Ready())

	f.loader.Step()
	f.ui.Draw()
	assert.Contains(t, f.text(), "Initializing 3D Environment 5%")

	f.ready(t)
	screen := f.text()
	assert.NotContains(t, screen, "LOADING PORTFOLIO")
	assert.Contains(t, screen, "1 Welcome")
	assert.Contains(t, screen, f.data.Profile.Name)
	assert.Contains(t, screen, "SOUND OFF")
}

func TestSectionKeys(t *testing.T) {
	tests := []struct {
		name  string
		event *tcell.EventKey
		from  portfolio.Section
		want  portfolio.Section
		shows string
	}{
		{"digit", char('2'), portfolio.SectionWelcome, portfolio.SectionSkills, "SKILLS"},
		{"right", key(tcell.KeyRight), portfolio.SectionWelcome, portfolio.SectionSkills, "SKILLS"},
		{"left wraps", key(tcell.KeyLeft), portfolio.SectionWelcome, portfolio.SectionAchievements, "ACHIEVEMENTS"},
		{"tab", key(tcell.KeyTab), portfolio.SectionSkills, portfolio.SectionExperience, "EXPERIENCE"},
		{"five", char('5'), portfolio.SectionProjects, portfolio.SectionAchievements, "Employee Excellence Award"},
		{"out of range digit", char('9'), portfolio.SectionProjects, portfolio.SectionProjects, "PROJECTS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.ready(t)
			f.ui.Coordinator().SelectSection(tt.from)

			assert.False(t, f.ui.HandleEvent(tt.event))
			assert.Equal(t, tt.want, f.ui.Coordinator().Current())
			f.ui.Draw()
			assert.Contains(t, f.text(), tt.shows)
		})
	}
}

func TestProjectsExpandToggle(t *testing.T) {
	f := newFixture(t)
	f.ready(t)
	f.ui.HandleEvent(char('4'))

	f.ui.HandleEvent(key(tcell.KeyEnter))
	assert.Equal(t, 0, f.ui.Expand().Expanded())
	f.ui.Draw()
	assert.Contains(t, f.text(), f.data.Projects[0].TechLine())

	f.ui.HandleEvent(key(tcell.KeyDown))
	f.ui.HandleEvent(key(tcell.KeyEnter))
	assert.Equal(t, 1, f.ui.Expand().Expanded(), "expanding another card collapses the first")

	f.ui.HandleEvent(key(tcell.KeyEnter))
	assert.Equal(t, panels.NoSelection, f.ui.Expand().Expanded())
	f.ui.Draw()
	assert.NotContains(t, f.text(), f.data.Projects[0].TechLine())

	f.ui.HandleEvent(char('o'))
	assert.Equal(t, []string{f.data.Projects[1].Link}, f.links.Opened())
}

func TestCursorWrapsPerSection(t *testing.T) {
	f := newFixture(t)
	f.ready(t)

	f.ui.HandleEvent(key(tcell.KeyUp))
	assert.Equal(t, len(f.data.Links)-1, f.ui.Cursor(portfolio.SectionWelcome))
	f.ui.HandleEvent(key(tcell.KeyEnter))
	assert.Equal(t, []string{f.data.Links[len(f.data.Links)-1].URL}, f.links.Opened())

	f.ui.HandleEvent(char('2'))
	assert.Zero(t, f.ui.Cursor(portfolio.SectionSkills))
	for i := 0; i < 7; i++ {
		f.ui.HandleEvent(key(tcell.KeyDown))
	}
	assert.Equal(t, 1, f.ui.Cursor(portfolio.SectionSkills))
	assert.Equal(t, len(f.data.Links)-1, f.ui.Cursor(portfolio.SectionWelcome))
}

func TestInfoOverlayMuteAndQuit(t *testing.T) {
	f := newFixture(t)
	f.ready(t)

	f.ui.HandleEvent(char('i'))
	f.ui.Draw()
	screen := f.text()
	assert.Contains(t, screen, "Controls:")
	assert.Contains(t, screen, "• "+f.ui.Controls().Instructions()[0])

	assert.False(t, f.ui.HandleEvent(key(tcell.KeyEscape)), "escape closes the overlay first")
	assert.False(t, f.ui.Controls().InfoVisible())

	f.ui.HandleEvent(char('m'))
	f.ui.Draw()
	assert.Contains(t, f.text(), "SOUND ON")

	assert.True(t, f.ui.HandleEvent(key(tcell.KeyEscape)))
	assert.True(t, f.ui.HandleEvent(char('q')))
	assert.True(t, f.ui.HandleEvent(key(tcell.KeyCtrlC)))
}

func TestRunReturnsOnQuitKey(t *testing.T) {
	f := newFixture(t)
	done := make(chan error, 1)
	go func() {
		done <- f.ui.Run(context.Background())
	}()

	f.screen.InjectKey(tcell.KeyRune, '3', tcell.ModNone)
	f.screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
	assert.Equal(t, portfolio.SectionExperience, f.ui.Coordinator().Current())
}

func TestRunReturnsOnCancel(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- f.ui.Run(ctx)
	}()
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  []string
	}{
		{"", 10, nil},
		{"one two three", 7, []string{"one two", "three"}},
		{"supercalifragilistic word", 5, []string{"supercalifragilistic", "word"}},
		{"  spaced   out  ", 20, []string{"spaced out"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, wrap(tt.in, tt.width), tt.in)
	}
}
