package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/nmoreno/quizrush/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗   ██╗██╗███████╗██████╗ ██╗   ██╗███████╗██╗  ██╗
██╔═══██╗██║   ██║██║╚══███╔╝██╔══██╗██║   ██║██╔════╝██║  ██║
██║   ██║██║   ██║██║  ███╔╝ ██████╔╝██║   ██║███████╗███████║
██║▄▄ ██║██║   ██║██║ ███╔╝  ██╔══██╗██║   ██║╚════██║██╔══██║
╚██████╔╝╚██████╔╝██║███████╗██║  ██║╚██████╔╝███████║██║  ██║
 ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝`

const bannerCompact = "Q U I Z R U S H"

// RenderBanner returns the QUIZRUSH banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 66 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 66 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
