package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quillhq/quill/internal/profile"
)

// View implements tea.Model.
func (m Model) View() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(m.renderHeader(styles))
	b.WriteString("\n\n")
	b.WriteString(m.renderForm(styles))
	b.WriteString("\n")
	b.WriteString(m.renderNotice(styles))
	b.WriteString("\n")
	b.WriteString(styles.Footer.Render(m.help.View(m.keys)))

	content := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// renderHeader shows the app name, the page title, and the current phase.
func (m Model) renderHeader(styles Styles) string {
	parts := []string{
		styles.Logo.Render("quill"),
		styles.Text.Bold(true).Render("Account Settings"),
	}

	switch m.engine.Phase() {
	case profile.PhaseFetching:
		parts = append(parts, styles.MutedText.Render(m.spin.View()+"Loading profile..."))
	case profile.PhaseSaving:
		parts = append(parts, styles.WarningText.Render(m.spin.View()+"Saving..."))
	case profile.PhaseLeaving:
		parts = append(parts, styles.SuccessText.Render("Saved"))
	default:
		server := m.engine.Server()
		if server.Name != "" {
			parts = append(parts, styles.MutedText.Render(server.Name))
		}
	}

	return strings.Join(parts, "  ")
}

// renderForm draws the four fields inside a rounded frame.
func (m Model) renderForm(styles Styles) string {
	label := func(idx int, text string) string {
		if m.focus == idx {
			return styles.LabelFocused.Render(text)
		}
		return styles.Label.Render(text)
	}

	var b strings.Builder

	b.WriteString(label(fieldName, "Full Name"))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldName].View())
	b.WriteString("\n\n")

	b.WriteString(label(fieldEmail, "Email Address"))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldEmail].View())
	b.WriteString("\n\n")

	b.WriteString(label(fieldPassword, "New Password"))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render("at least 8 characters"))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldPassword].View())
	b.WriteString("\n\n")

	b.WriteString(label(fieldAvatar, "Avatar"))
	b.WriteString("  ")
	if m.engine.EncodeState() == profile.OpInFlight {
		b.WriteString(styles.WarningText.Render(m.spin.View() + "loading image..."))
	} else {
		b.WriteString(styles.FaintText.Render(avatarSummary(m.engine.Draft().Avatar)))
	}
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldAvatar].View())

	return styles.Frame.Render(b.String())
}

// renderNotice draws the latest success/failure message, if any.
func (m Model) renderNotice(styles Styles) string {
	switch m.notice.Level {
	case profile.LevelSuccess:
		return styles.SuccessText.Render(m.notice.Text)
	case profile.LevelError:
		return styles.DangerText.Render(m.notice.Text)
	case profile.LevelInfo:
		return styles.AccentText.Render(m.notice.Text)
	default:
		return ""
	}
}

// avatarSummary describes the current avatar value without dumping an entire
// data URL into the terminal.
func avatarSummary(avatar string) string {
	if avatar == "" {
		return "none"
	}
	if strings.HasPrefix(avatar, "data:") {
		return "embedded image, " + formatBytes(dataURLSize(avatar))
	}
	return truncate(avatar, 48)
}

// dataURLSize reports the decoded byte size of a base64 data URL, so the
// summary reflects the original file rather than the inflated encoding.
func dataURLSize(dataURL string) int {
	_, payload, ok := strings.Cut(dataURL, ";base64,")
	if !ok {
		return len(dataURL)
	}
	padding := len(payload) - len(strings.TrimRight(payload, "="))
	return len(payload)/4*3 - padding
}
