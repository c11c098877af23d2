package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// NoValue is shown where there is nothing to report.
const NoValue = "—"

var (
	monthNames   = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	weekdayNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner) + "\n"
	}

	return boxStyle.Render(content) + "\n"
}

// Money formats v as dollars with two decimals and a leading minus for
// losses, e.g. "$40.00" or "-$12.50".
func Money(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
	}
	abs := math.Abs(v)
	if abs < 0.005 {
		sign = ""
	}
	return fmt.Sprintf("%s$%.2f", sign, abs)
}

// ColoredMoney renders Money(v) green or red by sign.
func ColoredMoney(v float64) string {
	return ProfitStyle(v).Render(Money(v))
}

// Hours formats a duration in hours with two decimals.
func Hours(h float64) string {
	return fmt.Sprintf("%.2f", h)
}

// HoursOrNone is Hours with the NoValue placeholder for sessions without time.
func HoursOrNone(h float64) string {
	if h == 0 {
		return NoValue
	}
	return Hours(h) + "h"
}

// MonthName returns the three-letter English month abbreviation.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return "???"
	}
	return monthNames[m-1]
}

// WeekdayName returns the three-letter English weekday abbreviation.
func WeekdayName(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return "???"
	}
	return weekdayNames[d]
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Truncate shortens s to at most n visible runes, marking the cut with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
