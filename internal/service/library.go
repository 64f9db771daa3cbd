package service

import (
	"context"
	"log/slog"

	"pincab/internal/domain"
	"pincab/internal/store"
)

// GameService handles emulator and table browsing with a read-through cache.
// Invalidation is explicit (user refresh), never TTL-based.
type GameService struct {
	repo   domain.GameRepository
	store  *store.CabinetStore
	logger *slog.Logger
}

// NewGameService creates a new game service
func NewGameService(repo domain.GameRepository, st *store.CabinetStore, logger *slog.Logger) *GameService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GameService{repo: repo, store: st, logger: logger}
}

// GetEmulators returns the backend's emulators, from cache when available
func (s *GameService) GetEmulators(ctx context.Context) ([]domain.Emulator, error) {
	if emus, ok := s.store.GetEmulators(); ok {
		s.logger.Debug("cache hit", "key", "emulators")
		return emus, nil
	}

	emus, err := s.repo.GetEmulators(ctx)
	if err != nil {
		s.logger.Error("failed to get emulators", "error", err)
		return nil, err
	}

	if err := s.store.SaveEmulators(emus); err != nil {
		s.logger.Warn("failed to cache emulators", "error", err)
	}
	s.logger.Info("loaded emulators", "count", len(emus))
	return emus, nil
}

// GetTables returns the known tables for an emulator, from cache when
// available. The returned slice replaces any previous set wholesale.
func (s *GameService) GetTables(ctx context.Context, emulatorID int) ([]domain.Table, error) {
	if tables, ok := s.store.GetTables(emulatorID); ok {
		s.logger.Debug("cache hit", "key", "tables", "emulatorID", emulatorID)
		return tables, nil
	}

	tables, err := s.repo.GetTables(ctx, emulatorID)
	if err != nil {
		s.logger.Error("failed to get tables", "error", err, "emulatorID", emulatorID)
		return nil, err
	}

	if err := s.store.SaveTables(emulatorID, tables); err != nil {
		s.logger.Warn("failed to cache tables", "error", err, "emulatorID", emulatorID)
	}
	s.logger.Info("loaded tables", "count", len(tables), "emulatorID", emulatorID)
	return tables, nil
}

// GetTableDetails returns the expanded record for one table, from cache when
// available. RefreshGame drops the cached copy.
func (s *GameService) GetTableDetails(ctx context.Context, gameID string) (*domain.TableDetails, error) {
	if d, ok := s.store.GetDetails(gameID); ok {
		s.logger.Debug("cache hit", "key", "details", "gameID", gameID)
		return d, nil
	}

	d, err := s.repo.GetTableDetails(ctx, gameID)
	if err != nil {
		s.logger.Error("failed to get table details", "error", err, "gameID", gameID)
		return nil, err
	}

	if err := s.store.SaveDetails(gameID, d); err != nil {
		s.logger.Warn("failed to cache details", "error", err, "gameID", gameID)
	}
	return d, nil
}

// GetHighscores returns the scoreboard dump for one table. Scores change
// whenever someone plays, so they are never cached.
func (s *GameService) GetHighscores(ctx context.Context, gameID string) (*domain.Highscores, error) {
	scores, err := s.repo.GetHighscores(ctx, gameID)
	if err != nil {
		s.logger.Warn("failed to get highscores", "error", err, "gameID", gameID)
		return nil, err
	}
	return scores, nil
}

// RefreshEmulators drops the cached emulator list
func (s *GameService) RefreshEmulators() {
	s.store.InvalidateAll()
	s.logger.Info("cleared backend cache")
}

// RefreshTables drops the cached table list for one emulator
func (s *GameService) RefreshTables(emulatorID int) {
	s.store.InvalidateEmulator(emulatorID)
	s.logger.Info("cleared table cache", "emulatorID", emulatorID)
}

// RefreshGame drops the cached details and media index for one table
func (s *GameService) RefreshGame(gameID string) {
	s.store.InvalidateGame(gameID)
	s.logger.Debug("cleared game cache", "gameID", gameID)
}
