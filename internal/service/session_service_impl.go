package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pokerlog/internal/domain"
	"github.com/alexanderramin/pokerlog/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
	ids      domain.IdentityProvider
	observer UseCaseObserver
}

func NewSessionService(sessions repository.SessionRepo, ids domain.IdentityProvider, observers ...UseCaseObserver) SessionService {
	return &sessionService{
		sessions: sessions,
		ids:      ids,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *sessionService) Add(ctx context.Context, in domain.SessionInput) (session *domain.Session, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "add-session", time.Now(), fields, &err)

	if err = in.Validate(); err != nil {
		return nil, err
	}
	now := s.ids.Now()
	if strings.TrimSpace(in.Date) == "" {
		in.Date = domain.ToLocalDayID(now)
	}

	session = domain.NewSession(s.ids.NewID(), now, in)
	fields["session_id"] = session.ID
	fields["date"] = session.Date
	if err = s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}
	return session, nil
}

func (s *sessionService) Edit(ctx context.Context, id string, in domain.SessionInput) (session *domain.Session, err error) {
	fields := map[string]any{"session_id": id}
	defer observe(ctx, s.observer, "edit-session", time.Now(), fields, &err)

	if err = in.Validate(); err != nil {
		return nil, err
	}
	session, err = s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Date) == "" {
		in.Date = session.Date
	}

	session.Apply(in)
	if err = s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("updating session: %w", err)
	}
	return session, nil
}

func (s *sessionService) Get(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) List(ctx context.Context) ([]domain.Session, error) {
	return loadSessions(ctx, s.sessions), nil
}

func (s *sessionService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-session", time.Now(), map[string]any{"session_id": id}, &err)
	return s.sessions.Delete(ctx, id)
}
