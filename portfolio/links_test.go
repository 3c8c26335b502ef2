package portfolio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLink(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		target string
		want   string
		ok     bool
	}{
		{name: "absolute", target: "https://github.com/bharathkumar", want: "https://github.com/bharathkumar", ok: true},
		{name: "mailto", target: "mailto:bharathkumar@example.com", want: "mailto:bharathkumar@example.com", ok: true},
		{name: "relative with base", base: "https://bharathkumar.dev", target: "/resume.pdf", want: "https://bharathkumar.dev/resume.pdf", ok: true},
		{name: "relative without base", target: "/resume.pdf", ok: false},
		{name: "relative with bad base", base: "not a url", target: "/resume.pdf", ok: false},
		{name: "empty", base: "https://bharathkumar.dev", target: "  ", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveLink(tt.base, tt.target)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBrowserOpenerFiresAndForgets(t *testing.T) {
	opened := make(chan string, 1)
	b := &BrowserOpener{BaseURL: "https://bharathkumar.dev", open: func(u string) error {
		opened <- u
		return nil
	}}

	b.Open("/resume.pdf")
	select {
	case u := <-opened:
		assert.Equal(t, "https://bharathkumar.dev/resume.pdf", u)
	case <-time.After(time.Second):
		t.Fatal("link was not opened")
	}

	b.BaseURL = ""
	b.Open("/resume.pdf")
	select {
	case u := <-opened:
		t.Fatalf("unexpected open of %s", u)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestControls(t *testing.T) {
	c := NewControls()
	assert.True(t, c.Muted())
	assert.False(t, c.InfoVisible())

	var changes []bool
	c.OnMuteChange(func(m bool) { changes = append(changes, m) })

	assert.False(t, c.ToggleMute())
	c.SetMuted(false)
	assert.True(t, c.ToggleMute())
	assert.Equal(t, []bool{false, true}, changes)

	assert.True(t, c.ToggleInfo())
	c.CloseInfo()
	assert.False(t, c.InfoVisible())
	lines := c.Instructions()
	require.Len(t, lines, 4)
	lines[0] = "changed"
	assert.Equal(t, "Click and drag to rotate the view", c.Instructions()[0])
}
