package service

import (
	"context"
	"log/slog"

	"pincab/internal/domain"
)

// ActionService triggers external effects on the cabinet. Every action is a
// single round trip with no retry and no rollback; only transport-level
// success or failure is visible here.
type ActionService struct {
	repo   domain.ControlRepository
	logger *slog.Logger
}

// NewActionService creates a new action service
func NewActionService(repo domain.ControlRepository, logger *slog.Logger) *ActionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActionService{repo: repo, logger: logger}
}

// Play launches a table directly through its emulator
func (s *ActionService) Play(ctx context.Context, gameID string, opts *domain.LaunchOptions) (string, error) {
	out, err := s.repo.PlayTable(ctx, gameID, opts)
	if err != nil {
		s.logger.Error("play failed", "gameID", gameID, "error", err)
		return "", err
	}
	s.logger.Info("table launched", "gameID", gameID)
	return out, nil
}

// LaunchViaFrontend launches a table through the cabinet frontend
func (s *ActionService) LaunchViaFrontend(ctx context.Context, gameID string) (string, error) {
	out, err := s.repo.LaunchViaFrontend(ctx, gameID)
	if err != nil {
		s.logger.Error("frontend launch failed", "gameID", gameID, "error", err)
		return "", err
	}
	s.logger.Info("frontend launch sent", "gameID", gameID)
	return out, nil
}

// Restart restarts the cabinet frontend process
func (s *ActionService) Restart(ctx context.Context) (string, error) {
	out, err := s.repo.RestartFrontend(ctx)
	if err != nil {
		s.logger.Error("restart failed", "error", err)
		return "", err
	}
	s.logger.Info("frontend restarted")
	return out, nil
}

// SetMute toggles the cabinet's mute state
func (s *ActionService) SetMute(ctx context.Context, muted bool) (string, error) {
	out, err := s.repo.SetMute(ctx, muted)
	if err != nil {
		s.logger.Error("mute failed", "muted", muted, "error", err)
		return "", err
	}
	s.logger.Info("mute state changed", "muted", muted)
	return out, nil
}

// ListHooks lists the automation hooks the backend exposes
func (s *ActionService) ListHooks(ctx context.Context) ([]string, error) {
	hooks, err := s.repo.ListHooks(ctx)
	if err != nil {
		s.logger.Error("failed to list hooks", "error", err)
		return nil, err
	}
	return hooks, nil
}

// RunHook executes a named hook, optionally scoped to a game (0 = none)
func (s *ActionService) RunHook(ctx context.Context, name string, gameID int) (string, error) {
	out, err := s.repo.RunHook(ctx, name, gameID)
	if err != nil {
		s.logger.Error("hook failed", "hook", name, "error", err)
		return "", err
	}
	s.logger.Info("hook executed", "hook", name, "gameID", gameID)
	return out, nil
}
