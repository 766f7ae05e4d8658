// Package report renders enumeration output, either as the color-coded
// terminal report or as a stream of JSON events.
package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/l0lsec/datadogenumerator/pkg/version"
)

var (
	// Palette
	colorNeonGreen = lipgloss.Color("#00FF99") // Accessible
	colorDanger    = lipgloss.Color("#FF0055") // Denied / Transport failure
	colorWarning   = lipgloss.Color("#F59E0B") // Not found / Odd status
	colorInfo      = lipgloss.Color("#38BDF8") // Detail lines
	colorHeader    = lipgloss.Color("#22D3EE") // Section banners
	colorTextSub   = lipgloss.Color("#64748B") // Subtext

	// Shared Styles
	successStyle = lipgloss.NewStyle().Foreground(colorNeonGreen)
	dangerStyle  = lipgloss.NewStyle().Foreground(colorDanger)
	warnStyle    = lipgloss.NewStyle().Foreground(colorWarning)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	subtle       = lipgloss.NewStyle().Foreground(colorTextSub)

	headerStyle = lipgloss.NewStyle().
			Foreground(colorHeader).
			Bold(true)

	bannerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWarning).
			Padding(0, 2)

	bannerTitleStyle = lipgloss.NewStyle().
				Foreground(colorHeader).
				Bold(true)
)

// Glyphs prefixing each report line.
const (
	glyphSuccess = "[✓]"
	glyphFailure = "[✗]"
	glyphWarn    = "[!]"
	glyphInfo    = "[i]"
)

// Banner renders the startup header.
func Banner(appVersion, region string, noColor bool) string {
	title := fmt.Sprintf("DDENUM %s", appVersion)
	subtitle := "Datadog API Key Enumeration Tool"
	author := fmt.Sprintf("github.com/%s", version.Author)
	target := fmt.Sprintf("Region: %s", region)

	if noColor {
		return fmt.Sprintf("%s\n%s (%s)\n%s", title, subtitle, author, target)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		bannerTitleStyle.Render(title),
		subtle.Render(subtitle),
		subtle.Render(author),
		subtle.Render(target),
	)
	return bannerBoxStyle.Render(body)
}
