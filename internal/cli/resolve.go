package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/pokerlog/internal/repository"
)

// resolveSessionID resolves a session identifier which can be:
//   - A full session ID (passed through when it exists)
//   - A unique prefix, such as the eight characters session lists show
func resolveSessionID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("session ID is required")
	}

	if s, err := app.Sessions.Get(ctx, input); err == nil {
		return s.ID, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	sessions, err := app.Sessions.List(ctx)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, s := range sessions {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("session %q: %w", input, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("session prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
