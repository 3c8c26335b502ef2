package portfolio

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSection(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Section
		ok    bool
	}{
		{name: "welcome", input: "welcome", want: SectionWelcome, ok: true},
		{name: "mixed case", input: "  Skills ", want: SectionSkills, ok: true},
		{name: "experience", input: "experience", want: SectionExperience, ok: true},
		{name: "projects", input: "projects", want: SectionProjects, ok: true},
		{name: "achievements", input: "ACHIEVEMENTS", want: SectionAchievements, ok: true},
		{name: "unknown", input: "contact", ok: false},
		{name: "empty", input: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSection(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
				assert.Equal(t, got, mustParse(t, got.String()))
			}
		})
	}
}

func mustParse(t *testing.T, name string) Section {
	t.Helper()
	s, ok := ParseSection(name)
	require.True(t, ok)
	return s
}

func TestSectionTables(t *testing.T) {
	want := map[Section]common.Vec3{
		SectionWelcome:      {0, 0, 10},
		SectionSkills:       {10, 2, 5},
		SectionExperience:   {-5, 0, 8},
		SectionProjects:     {0, -5, 8},
		SectionAchievements: {5, -2, 10},
	}
	for s, pos := range want {
		got, ok := s.CameraPosition()
		require.True(t, ok)
		assert.Equal(t, pos, got, s.String())

		anchor, ok := s.Anchor()
		require.True(t, ok)
		assert.Equal(t, pos[0], anchor[0], "anchor x follows camera x for %s", s)
		assert.Equal(t, pos[1], anchor[1], "anchor y follows camera y for %s", s)
		assert.Equal(t, float32(0), anchor[2])
	}

	_, ok := Section(42).CameraPosition()
	assert.False(t, ok)
	assert.Equal(t, "unknown", Section(-1).String())
	assert.Empty(t, Section(9).Label())
}

func TestSectionStepWraps(t *testing.T) {
	tests := []struct {
		from Section
		n    int
		want Section
	}{
		{SectionWelcome, 1, SectionSkills},
		{SectionWelcome, -1, SectionAchievements},
		{SectionAchievements, 1, SectionWelcome},
		{SectionProjects, -2, SectionSkills},
		{SectionSkills, 10, SectionSkills},
		{Section(42), 1, SectionSkills},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.Step(tt.n), "%d%+d", tt.from, tt.n)
	}
}

func TestCoordinatorExactlyOneActive(t *testing.T) {
	c := NewCoordinator()
	for _, s := range Sections {
		require.True(t, c.SelectSection(s))

		active := 0
		for section, on := range c.ActiveFlags() {
			if on {
				active++
				assert.Equal(t, s, section)
				pos, _ := section.CameraPosition()
				assert.Equal(t, pos, c.CameraPosition())
			}
			assert.Equal(t, on, c.IsActive(section))
		}
		assert.Equal(t, 1, active)
	}
}

func TestCoordinatorIgnoresInvalidSection(t *testing.T) {
	c := NewCoordinator(WithInitialSection(SectionProjects))
	before := c.CameraPosition()

	var notified int
	c.OnSectionChange(func(_, _ Section) { notified++ })

	assert.False(t, c.SelectSection(Section(7)))
	assert.False(t, c.SelectSection(Section(-1)))
	assert.False(t, c.Select("contact"))

	assert.Equal(t, SectionProjects, c.Current())
	assert.Equal(t, before, c.CameraPosition())
	assert.Zero(t, notified)
}

func TestCoordinatorNotifiesInOrder(t *testing.T) {
	var calls []string
	c := NewCoordinator(WithSectionListener(func(prev, next Section) {
		calls = append(calls, "first:"+prev.String()+">"+next.String())
	}))
	c.OnSectionChange(func(prev, next Section) {
		calls = append(calls, "second:"+prev.String()+">"+next.String())
	})

	assert.True(t, c.Select("skills"))
	assert.True(t, c.Select("skills"))

	assert.Equal(t, []string{"first:welcome>skills", "second:welcome>skills"}, calls)
}

func TestCoordinatorInitialSectionFallback(t *testing.T) {
	assert.Equal(t, SectionWelcome, NewCoordinator().Current())
	assert.Equal(t, SectionWelcome, NewCoordinator(WithInitialSection(Section(12))).Current())
	assert.Equal(t, SectionAchievements, NewCoordinator(WithInitialSection(SectionAchievements)).Current())
}

func TestNotifyLoadedIsOneShot(t *testing.T) {
	c := NewCoordinator()
	var fired int
	c.OnLoaded(func() { fired++ })

	assert.False(t, c.Loaded())
	c.NotifyLoaded()
	c.NotifyLoaded()
	assert.True(t, c.Loaded())
	assert.Equal(t, 1, fired)

	late := false
	c.OnLoaded(func() { late = true })
	assert.True(t, late)
}
