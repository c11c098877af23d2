package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pokerlog/internal/domain"
)

const notePreviewLen = 32

// FormatSessionList renders sessions in the order given.
func FormatSessionList(title string, sessions []domain.Session) string {
	if len(sessions) == 0 {
		return RenderBox(title, Dim("No sessions found."))
	}

	headers := []string{"ID", "DATE", "GAME", "STAKES", "HOURS", "RESULT", "NOTES"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		game := StylePurple.Render(orNone(s.Type))
		if s.Location != "" {
			game += " " + Dim(s.Location)
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			s.Date,
			game,
			orNone(s.Stakes),
			HoursOrNone(s.Hours),
			ColoredMoney(s.Profit),
			Dim(Truncate(s.Notes, notePreviewLen)),
		})
	}

	table := RenderAlignedTable(headers,
		[]Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignLeft},
		rows)
	footer := Dim(fmt.Sprintf("%d session(s)", len(sessions)))
	return RenderBox(title, table+"\n"+footer)
}

// FormatSession renders every field of one session.
func FormatSession(s *domain.Session) string {
	rows := [][]string{
		{"ID", s.ID},
		{"Date", s.Date},
		{"Type", orNone(s.Type)},
		{"Location", orNone(s.Location)},
		{"Stakes", orNone(s.Stakes)},
		{"Hours", HoursOrNone(s.Hours)},
		{"Buy-in", Money(s.BuyIn)},
		{"Cash-out", Money(s.CashOut)},
		{"Result", ColoredMoney(s.Profit)},
		{"Notes", orNone(s.Notes)},
		{"Recorded", s.CreatedAt.Local().Format("Jan 2, 2006 15:04")},
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%s  %s\n", Bold(fmt.Sprintf("%-9s", r[0])), r[1])
	}
	return RenderBox("Session", b.String())
}

// FormatResultPreview shows the result a buy-in and cash-out would record.
func FormatResultPreview(buyIn, cashOut float64) string {
	return "Result: " + ColoredMoney(domain.ComputeProfit(buyIn, cashOut))
}

// FormatSessionSaved confirms an added or edited session.
func FormatSessionSaved(verb string, s *domain.Session) string {
	return fmt.Sprintf("%s session %s on %s  %s\n",
		verb, StyleBlue.Render(s.ID), s.Date, FormatResultPreview(s.BuyIn, s.CashOut))
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return NoValue
	}
	return s
}
