package home

import (
	"charm.land/lipgloss/v2"

	"github.com/nmoreno/quizrush/internal/ui/theme"
)

// MascotVariant selects which quizmaster art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default indigo
	MascotCelebrating                      // Gold, star eyes — last game completed
	MascotAlert                            // Exclamation — last game was a wipeout
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ?★? │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ?★? │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ ?★? │
└─────┘`

// RenderMascot returns the quizmaster ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
