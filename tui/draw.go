package tui

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-portfolio/portfolio"
	"github.com/gdamore/tcell/v2"
)

var (
	colorSpace   = tcell.GetColor("#070b1a")
	colorPrimary = tcell.GetColor("#8B5CF6")
	colorAccent  = tcell.GetColor("#4CC9F0")
	colorProject = tcell.GetColor("#F72585")
	colorGold    = tcell.GetColor("#FCD34D")
	colorMuted   = tcell.GetColor("#94A3B8")
	colorText    = tcell.GetColor("#F8FAFC")

	styleBase = tcell.StyleDefault.Background(colorSpace).Foreground(colorText)
)

const (
	loadingBarWidth = 40
	bodyTop         = 2
	indent          = 2
)

// Draw renders the current state and shows it. The first call counts as the portfolio being
// mounted for the readiness gate.
func (u *UI) Draw() {
	u.screen.SetStyle(styleBase)
	u.screen.Clear()
	w, h := u.screen.Size()

	if !u.readiness.Ready() {
		u.drawLoading(w, h)
	} else {
		u.drawNav(w)
		u.drawSection(w, h)
		u.drawStatus(w, h)
		if u.controls.InfoVisible() {
			u.drawInfo(w, h)
		}
	}
	u.screen.Show()
	u.coord.NotifyLoaded()
}

func (u *UI) drawLoading(w, h int) {
	p := u.loading.Progress()
	y := h/2 - 2
	title := "LOADING PORTFOLIO"
	u.put((w-len(title))/2, y, title, styleBase.Foreground(colorAccent).Bold(true))

	filled := loadingBarWidth * p / portfolio.LoadingComplete
	bar := strings.Repeat("█", filled) + strings.Repeat("░", loadingBarWidth-filled)
	u.put((w-loadingBarWidth)/2, y+2, bar, styleBase.Foreground(colorAccent))

	caption := fmt.Sprintf("Initializing 3D Environment %d%%", p)
	u.put((w-len(caption))/2, y+4, caption, styleBase.Foreground(colorMuted))
}

// drawNav draws the five buttons with the current section highlighted.
func (u *UI) drawNav(w int) {
	x := 1
	for i, s := range portfolio.Sections {
		caption := fmt.Sprintf(" %d %s ", i+1, s.Label())
		st := styleBase.Foreground(colorMuted)
		if u.coord.IsActive(s) {
			st = styleBase.Background(colorPrimary).Foreground(colorText).Bold(true)
		}
		if x+len(caption) > w {
			break
		}
		x = u.put(x, 0, caption, st) + 1
	}
}

func (u *UI) drawStatus(w, h int) {
	sound := "SOUND ON"
	if u.controls.Muted() {
		sound = "SOUND OFF"
	}
	status := fmt.Sprintf("[m] %s  [i] info  [q] quit", sound)
	u.put(w-len(status)-1, h-1, status, styleBase.Foreground(colorMuted))
	u.put(1, h-1, "←/→ sections  ↑/↓ select  enter open", styleBase.Foreground(colorMuted))
}

func (u *UI) drawSection(w, h int) {
	s := u.coord.Current()
	b := &body{u: u, y: bodyTop, width: w - 2*indent, bottom: h - 2}
	cursor := u.Cursor(s)

	switch s {
	case portfolio.SectionWelcome:
		b.line(u.data.Profile.Name, styleBase.Foreground(colorAccent).Bold(true))
		b.wrapped(u.data.Profile.Headline, 0, styleBase.Foreground(colorMuted))
		b.skip()
		for i, l := range u.data.Links {
			st := styleBase.Foreground(tcell.GetColor(l.Color))
			b.line(fmt.Sprintf("%-8s %s", strings.ToUpper(l.Label), l.URL), selected(st, i == cursor))
		}
	case portfolio.SectionSkills:
		b.line("SKILLS", styleBase.Foreground(colorAccent).Bold(true))
		b.skip()
		for i := 0; i < u.skills.Faces(); i++ {
			cat, _ := u.skills.Category(i)
			b.line(cat.Title, selected(styleBase.Foreground(tcell.GetColor(cat.Color)).Bold(true), i == cursor))
			b.wrapped(strings.Join(cat.Items, ", "), indent, styleBase)
		}
	case portfolio.SectionExperience:
		b.line("EXPERIENCE", styleBase.Foreground(colorAccent).Bold(true))
		b.skip()
		for i, e := range u.data.Experience {
			b.line(fmt.Sprintf("%s · %s · %s", e.Company, e.Role, e.Period), selected(styleBase.Foreground(colorPrimary).Bold(true), i == cursor))
			ink := styleBase.Foreground(colorMuted)
			if i == cursor {
				ink = styleBase
			}
			for _, hl := range e.Highlights {
				b.wrapped("• "+hl, indent, ink)
			}
		}
	case portfolio.SectionProjects:
		b.line("PROJECTS", styleBase.Foreground(colorAccent).Bold(true))
		b.skip()
		for i, p := range u.data.Projects {
			b.line(p.Title, selected(styleBase.Foreground(colorProject).Bold(true), i == cursor))
			if !u.expand.IsExpanded(i) {
				b.indented("Enter for details", indent, styleBase.Foreground(colorMuted))
				continue
			}
			b.wrapped(p.Description, indent, styleBase)
			b.wrapped(p.TechLine(), indent, styleBase.Foreground(colorAccent))
			if p.Link != "" {
				b.indented("[o] "+p.Link, indent, styleBase.Foreground(colorMuted).Underline(true))
			}
		}
	case portfolio.SectionAchievements:
		b.line("ACHIEVEMENTS", styleBase.Foreground(colorGold).Bold(true))
		b.skip()
		for i, a := range u.data.Achievements {
			b.line(fmt.Sprintf("%s  %s", a.Year, a.Title), selected(styleBase.Foreground(colorGold), i == cursor))
			b.wrapped(a.Description, indent, styleBase.Foreground(colorMuted))
		}
	}
}

// drawInfo draws the controls panel centred over the section.
func (u *UI) drawInfo(w, h int) {
	lines := append([]string{"Controls:"}, bullets(u.controls.Instructions())...)
	lines = append(lines, "", "[esc] Close")
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2
	x0, y0 := (w-width)/2, (h-height)/2
	frame := styleBase.Background(tcell.GetColor("#0F172A"))
	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			u.screen.SetContent(x, y, ' ', nil, frame)
		}
	}
	for i, l := range lines {
		st := frame
		if i == 0 {
			st = frame.Foreground(colorAccent).Bold(true)
		}
		u.put(x0+2, y0+1+i, l, st)
	}
}

func bullets(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = "• " + l
	}
	return out
}

func selected(st tcell.Style, on bool) tcell.Style {
	if on {
		return st.Reverse(true)
	}
	return st
}

// put writes s at (x, y) and returns the column after it.
func (u *UI) put(x, y int, s string, st tcell.Style) int {
	for _, r := range s {
		u.screen.SetContent(x, y, r, nil, st)
		x++
	}
	return x
}

// body lays out section text top to bottom and drops what does not fit.
type body struct {
	u      *UI
	y      int
	width  int
	bottom int
}

func (b *body) indented(s string, offset int, st tcell.Style) {
	if b.y > b.bottom {
		return
	}
	b.u.put(indent+offset, b.y, s, st)
	b.y++
}

func (b *body) line(s string, st tcell.Style) {
	b.indented(s, 0, st)
}

func (b *body) wrapped(s string, offset int, st tcell.Style) {
	for _, l := range wrap(s, b.width-offset) {
		b.indented(l, offset, st)
	}
}

func (b *body) skip() {
	b.y++
}

// wrap breaks s into lines of at most width runes on word boundaries. Words longer than width
// get a line of their own.
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 || width <= 0 {
		return nil
	}
	var lines []string
	cur := words[0]
	for _, word := range words[1:] {
		if len([]rune(cur))+1+len([]rune(word)) > width {
			lines = append(lines, cur)
			cur = word
			continue
		}
		cur += " " + word
	}
	return append(lines, cur)
}
