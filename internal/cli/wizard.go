package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/pokerlog/internal/cli/formatter"
	"github.com/alexanderramin/pokerlog/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var errWizardCancelled = errors.New("cancelled")

var gameTypes = []string{"Cash", "Tournament", "Sit & Go", "Home game"}

// pokerlogHuhTheme returns a custom huh theme using the Gruvbox palette.
func pokerlogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// sessionWizardFields holds the raw text the add form collects.
type sessionWizardFields struct {
	Date     string
	Type     string
	Location string
	Stakes   string
	Hours    string
	BuyIn    string
	CashOut  string
	Notes    string
}

// input converts the collected text into a session input. Blank numbers
// are zero and a blank date is left for the service to default.
func (f sessionWizardFields) input() (domain.SessionInput, error) {
	in := domain.SessionInput{
		Date:     strings.TrimSpace(f.Date),
		Type:     f.Type,
		Location: f.Location,
		Stakes:   f.Stakes,
		Notes:    f.Notes,
	}
	var err error
	if in.Hours, err = parseAmount(f.Hours); err != nil {
		return in, fmt.Errorf("hours: %w", err)
	}
	if in.BuyIn, err = parseAmount(f.BuyIn); err != nil {
		return in, fmt.Errorf("buy-in: %w", err)
	}
	if in.CashOut, err = parseAmount(f.CashOut); err != nil {
		return in, fmt.Errorf("cash-out: %w", err)
	}
	return in, in.Validate()
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, ok := domain.ParseLocalDayID(s); !ok {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateAmount(s string) error {
	_, err := parseAmount(s)
	return err
}

func validateHours(s string) error {
	h, err := parseAmount(s)
	if err != nil {
		return err
	}
	if h < 0 {
		return domain.ErrNegativeHours
	}
	return nil
}

// newAddSessionForm creates the two-page huh form for recording a session.
func newAddSessionForm(fields *sessionWizardFields, today string) *huh.Form {
	options := make([]huh.Option[string], 0, len(gameTypes))
	for _, g := range gameTypes {
		options = append(options, huh.NewOption(g, g))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("Leave blank for today").
				Placeholder(today).
				Value(&fields.Date).
				Validate(validateOptionalDate),
			huh.NewSelect[string]().
				Title("Game").
				Options(options...).
				Value(&fields.Type),
			huh.NewInput().
				Title("Location").
				Value(&fields.Location),
			huh.NewInput().
				Title("Stakes").
				Placeholder("1/2").
				Value(&fields.Stakes),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Hours").
				Placeholder("0").
				Value(&fields.Hours).
				Validate(validateHours),
			huh.NewInput().
				Title("Buy-in").
				Placeholder("0.00").
				Value(&fields.BuyIn).
				Validate(validateAmount),
			huh.NewInput().
				Title("Cash-out").
				Placeholder("0.00").
				Value(&fields.CashOut).
				Validate(validateAmount),
			huh.NewInput().
				Title("Notes").
				Value(&fields.Notes),
		),
	).WithTheme(pokerlogHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return wizardConfirmWithDescription(title, "", result)
}

func wizardConfirmWithDescription(title, description string, result *bool) *huh.Form {
	confirm := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(result)
	if description != "" {
		confirm = confirm.Description(description)
	}
	return huh.NewForm(huh.NewGroup(confirm)).WithTheme(pokerlogHuhTheme()).WithShowHelp(false)
}

// runAddWizard collects a session with the add form, then shows the
// computed result and asks for confirmation before returning it.
func runAddWizard(app *App) (domain.SessionInput, error) {
	fields := sessionWizardFields{Type: gameTypes[0]}
	today := domain.ToLocalDayID(app.now())

	if err := newAddSessionForm(&fields, today).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return domain.SessionInput{}, errWizardCancelled
		}
		return domain.SessionInput{}, err
	}
	in, err := fields.input()
	if err != nil {
		return domain.SessionInput{}, err
	}

	date := in.Date
	if date == "" {
		date = today
	}
	confirmed := true
	desc := fmt.Sprintf("%s on %s", formatter.FormatResultPreview(in.BuyIn, in.CashOut), date)
	if err := wizardConfirmWithDescription("Save this session?", desc, &confirmed).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return domain.SessionInput{}, errWizardCancelled
		}
		return domain.SessionInput{}, err
	}
	if !confirmed {
		return domain.SessionInput{}, errWizardCancelled
	}
	return in, nil
}
