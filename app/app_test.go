package app

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/Carmen-Shannon/oxy-portfolio/config"
	"github.com/Carmen-Shannon/oxy-portfolio/content"
	"github.com/Carmen-Shannon/oxy-portfolio/engine"
	"github.com/Carmen-Shannon/oxy-portfolio/engine/audio"
	"github.com/Carmen-Shannon/oxy-portfolio/portfolio"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAudio records calls without opening a device.
type fakeAudio struct {
	mu          sync.Mutex
	initialized bool
	muted       bool
	volume      float64
	cues        []audio.Cue
}

var _ audio.Audio = &fakeAudio{}

func (f *fakeAudio) Init() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.initialized = true
	return nil
}

func (f *fakeAudio) Initialized() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.initialized
}

func (f *fakeAudio) Muted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.muted
}

func (f *fakeAudio) SetMuted(muted bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.muted = muted
}

func (f *fakeAudio) Volume() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.volume
}

func (f *fakeAudio) SetVolume(volume float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.volume = volume
}

func (f *fakeAudio) Play(cue audio.Cue) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cues = append(f.cues, cue)
}

func (f *fakeAudio) Streamer() beep.Streamer {
	return beep.Silence(-1)
}

func (f *fakeAudio) Release() {}

func (f *fakeAudio) played(cue audio.Cue) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.cues {
		if c == cue {
			n++
		}
	}
	return n
}

type nopOpener struct{}

func (nopOpener) Open(string) {}

func newTestPortfolio(t *testing.T, cfg config.Config, options ...PortfolioOption) (*Portfolio, *fakeAudio) {
	t.Helper()
	data, err := content.Default()
	require.NoError(t, err)
	sound := &fakeAudio{}
	opts := append([]PortfolioOption{WithAudio(sound), WithLinkOpener(nopOpener{})}, options...)
	p, err := NewPortfolio(cfg, data, opts...)
	require.NoError(t, err)
	return p, sound
}

func eyeOf(p *Portfolio) common.Vec3 {
	x, y, z := p.World.Camera().Controller().Position()
	return common.Vec3{x, y, z}
}

func TestNewPortfolioStartSection(t *testing.T) {
	cfg := config.Default()
	cfg.StartSection = "projects"
	p, _ := newTestPortfolio(t, cfg)

	assert.Equal(t, portfolio.SectionProjects, p.Coordinator.Current())
	assert.Equal(t, common.Vec3{0, -5, 8}, eyeOf(p))
	assert.Len(t, p.Panels, len(portfolio.Sections))
	assert.Len(t, p.World.Lights(), 3)
	require.NotNil(t, p.World.Fog())
	assert.Equal(t, float32(10), p.World.Fog().Near)
	assert.Equal(t, float32(50), p.World.Fog().Far)

	cfg.StartSection = "blog"
	data, err := content.Default()
	require.NoError(t, err)
	_, err = NewPortfolio(cfg, data, WithAudio(&fakeAudio{}))
	assert.Error(t, err)
}

func TestCameraSettingsReachTheController(t *testing.T) {
	cfg := config.Default()
	cfg.Camera = config.CameraConfig{Sensitivity: 0.01, Damping: 1}
	p, _ := newTestPortfolio(t, cfg)
	ctrl := p.World.Camera().Controller()
	require.NotNil(t, ctrl)
	assert.Equal(t, float32(1), ctrl.Damping())

	p.HandleKey(common.Key2)
	ctrl.Update(1.0 / 60)
	got := eyeOf(p)
	for axis, want := range (common.Vec3{10, 2, 5}) {
		assert.InDelta(t, want, got[axis], 1e-4, "damping 1 reaches the goal in one frame")
	}
}

func TestSelectingSkillsMovesTheCamera(t *testing.T) {
	p, sound := newTestPortfolio(t, config.Default())
	e := engine.NewEngine(engine.WithScene(p.World), engine.WithScene(p.HUD))

	p.HandleKey(common.Key2)
	assert.Equal(t, portfolio.SectionSkills, p.Coordinator.Current())
	assert.Equal(t, 1, sound.played(audio.CueSection))

	const dt = float32(1) / 60
	for i := 0; i < 600; i++ {
		e.Tick(dt)
	}
	got := eyeOf(p)
	for axis, want := range (common.Vec3{10, 2, 5}) {
		assert.InDelta(t, want, got[axis], 1e-3, "axis %d", axis)
	}
	assert.InDelta(t, 10, p.World.Camera().Position()[0], 1e-3)

	for _, panel := range p.Panels {
		want := float32(0.3)
		switch panel.Section() {
		case portfolio.SectionSkills:
			want = 1
		case portfolio.SectionWelcome:
			want = 0.5
		}
		assert.InDelta(t, want, panel.Transform().Scale[0], 1e-3, "%s", panel.Section())
	}
}

func TestHandleKey(t *testing.T) {
	quits := 0
	p, sound := newTestPortfolio(t, config.Default(), WithQuit(func() { quits++ }))

	p.HandleKey(common.KeyLeft)
	assert.Equal(t, portfolio.SectionAchievements, p.Coordinator.Current())
	p.HandleKey(common.KeyRight)
	assert.Equal(t, portfolio.SectionWelcome, p.Coordinator.Current())
	p.HandleKey(common.Key4)
	assert.Equal(t, portfolio.SectionProjects, p.Coordinator.Current())

	p.HandleKey(common.KeyI)
	assert.True(t, p.Controls.InfoVisible())
	p.HandleKey(common.KeyEsc)
	assert.False(t, p.Controls.InfoVisible())
	assert.Zero(t, quits)
	p.HandleKey(common.KeyEsc)
	assert.Equal(t, 1, quits)

	assert.True(t, p.Controls.Muted())
	p.HandleKey(common.KeyM)
	assert.False(t, p.Controls.Muted())
	assert.False(t, sound.Muted())
	assert.True(t, sound.Initialized())
	p.HandleKey(common.KeyM)
	assert.True(t, sound.Muted())
}

func TestZoomKeysCancelTheSectionMove(t *testing.T) {
	p, _ := newTestPortfolio(t, config.Default())
	e := engine.NewEngine(engine.WithScene(p.World))
	ctrl := p.World.Camera().Controller()

	p.HandleKey(common.Key2)
	_, _, _, moving := ctrl.Goal()
	assert.True(t, moving)

	p.HandleKey(common.KeyUp)
	_, _, _, moving = ctrl.Goal()
	assert.False(t, moving)

	before := ctrl.Radius()
	for i := 0; i < 120; i++ {
		e.Tick(float32(1) / 60)
	}
	assert.Less(t, ctrl.Radius(), before)

	before = ctrl.Radius()
	p.HandleKey(common.KeyMinus)
	for i := 0; i < 120; i++ {
		e.Tick(float32(1) / 60)
	}
	assert.Greater(t, ctrl.Radius(), before)
}

func TestLoadingOverlayClearsWhenReady(t *testing.T) {
	p, _ := newTestPortfolio(t, config.Default())
	require.True(t, p.Chrome.Loading.Shown())
	assert.True(t, p.Coordinator.Loaded())

	for !p.Loading.Done() {
		p.Loading.Step()
	}
	assert.True(t, p.Readiness.Ready())

	e := engine.NewEngine(engine.WithScene(p.World), engine.WithScene(p.HUD))
	e.Tick(float32(1) / 60)
	assert.False(t, p.Chrome.Loading.Shown())
	assert.False(t, p.Chrome.Loading.Root().Enabled())
}
