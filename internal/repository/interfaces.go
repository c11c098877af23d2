package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/pokerlog/internal/domain"
)

// ErrNotFound is returned when a lookup or targeted write matches no row.
var ErrNotFound = errors.New("not found")

// SessionRepo persists the session collection. List returns sessions in
// the order they were added; ReplaceAll overwrites the whole collection.
type SessionRepo interface {
	List(ctx context.Context) ([]domain.Session, error)
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Create(ctx context.Context, s *domain.Session) error
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, sessions []domain.Session) error
	Count(ctx context.Context) (int, error)
}
