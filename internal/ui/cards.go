package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwhalen/weather-deck/internal/models"
)

// renderCards renders one card per record in collection order.
func (m Model) renderCards() string {
	records := m.board.Records()
	if len(records) == 0 {
		return mutedStyle.Render("No cities loaded. Search above to add one.")
	}

	cards := make([]string, 0, len(records))
	for i, record := range records {
		cards = append(cards, m.renderCard(record, i == m.selected))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderCard renders a single city card.
func (m Model) renderCard(record models.WeatherRecord, selected bool) string {
	var content strings.Builder

	header := fmt.Sprintf("%s %s", iconGlyph(record.Icon), record.City)
	temp := models.DisplayTemp(record.TempC, m.useCelsius)
	content.WriteString(valueStyle.Bold(true).Render(header))
	content.WriteString("  ")
	content.WriteString(titleStyle.Render(temp))
	content.WriteString("\n")

	content.WriteString(valueStyle.Render(record.Description))
	content.WriteString(mutedStyle.Render(fmt.Sprintf("  feels like %s",
		models.DisplayTemp(record.FeelsLikeC, m.useCelsius))))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Humidity: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%d%%", record.Humidity)))
	content.WriteString(labelStyle.Render("  Wind: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.1f m/s", record.WindSpeed)))
	content.WriteString("\n")

	footer := fmt.Sprintf("updated %s", models.FormatUpdated(record.UpdatedAt))
	if selected && m.refreshing {
		footer = "refreshing..."
	}
	content.WriteString(mutedStyle.Render(footer))

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	return style.Width(48).Render(content.String())
}

// iconGlyph maps an API icon code to a terminal glyph. The day/night
// suffix carries no extra display information here.
func iconGlyph(code string) string {
	code = strings.TrimSuffix(code, "d")
	code = strings.TrimSuffix(code, "n")

	switch code {
	case "01":
		return "☀"
	case "02":
		return "⛅"
	case "03", "04":
		return "☁"
	case "09", "10":
		return "🌧"
	case "11":
		return "⛈"
	case "13":
		return "❄"
	case "50":
		return "🌫"
	default:
		return "☀"
	}
}
