package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/internal/store"
	"github.com/MKhiriev/go-screen-sync/models"
)

// screenService is the concrete implementation of ScreenService. It
// owns the authoritative screen set: versions are assigned here, and
// stale-base pushes are rejected so concurrent agents cannot overwrite
// each other unnoticed.
type screenService struct {
	// screenRepository is the data-access layer for the authoritative
	// screen rows.
	screenRepository store.ServerScreenRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewScreenService constructs a ScreenService wired to the given
// repository.
func NewScreenService(screenRepository store.ServerScreenRepository, logger *logger.Logger) ScreenService {
	return &screenService{
		screenRepository: screenRepository,
		logger:           logger,
	}
}

// PushScreen applies one agent mutation to the authoritative store.
//
// Creates and updates upsert the transmitted screen; deletes tombstone
// it so other agents observe the removal on their next pull. Every
// accepted write bumps the version by one.
//
// Returns the acknowledgement and the persisted screen, or:
//   - ErrInvalidScreen if the request carries no screen id or an unknown
//     operation.
//   - store.ErrVersionConflict (wrapped) together with the current
//     server copy when the request base version is stale.
func (s *screenService) PushScreen(ctx context.Context, req models.PushRequest) (models.PushResponse, models.Screen, error) {
	log := logger.FromContext(ctx)

	if req.Screen.ScreenID == "" {
		log.Error().Str("func", "*screenService.PushScreen").Msg("push request carries no screen id")
		return models.PushResponse{}, models.Screen{}, ErrInvalidScreen
	}

	var (
		persisted models.Screen
		err       error
	)
	switch req.Operation {
	case models.OpCreate, models.OpUpdate:
		persisted, err = s.screenRepository.UpsertScreen(ctx, req.Screen, req.BaseVersion)
	case models.OpDelete:
		persisted, err = s.screenRepository.DeleteScreen(ctx, req.Screen.ScreenID, req.BaseVersion)
	default:
		log.Error().Str("func", "*screenService.PushScreen").Str("screen_id", req.Screen.ScreenID).Msg("push request carries unknown operation")
		return models.PushResponse{}, models.Screen{}, ErrInvalidScreen
	}
	if err != nil {
		// On a stale base the repository hands back the current server
		// copy; the caller needs it to build the conflict response.
		log.Err(err).
			Str("func", "*screenService.PushScreen").
			Str("screen_id", req.Screen.ScreenID).
			Str("operation", req.Operation.String()).
			Int64("base_version", req.BaseVersion).
			Msg("push rejected")
		return models.PushResponse{}, persisted, fmt.Errorf("push screen: %w", err)
	}

	return models.PushResponse{ScreenID: persisted.ScreenID, Version: persisted.Version}, persisted, nil
}

// GetScreen returns one screen by id.
func (s *screenService) GetScreen(ctx context.Context, screenID string) (models.Screen, error) {
	log := logger.FromContext(ctx)

	if screenID == "" {
		log.Error().Str("func", "*screenService.GetScreen").Msg("empty screen id provided")
		return models.Screen{}, ErrInvalidDataProvided
	}

	screen, err := s.screenRepository.GetScreen(ctx, screenID)
	if err != nil {
		log.Err(err).Str("func", "*screenService.GetScreen").Str("screen_id", screenID).Msg("screen lookup failed")
		return models.Screen{}, fmt.Errorf("screen lookup failed: %w", err)
	}

	return screen, nil
}

// ListScreens returns a page of screens ordered by last update.
// Tombstoned screens are included only when includeDeleted is set, so
// sync agents can observe deletions while plain listings stay clean.
func (s *screenService) ListScreens(ctx context.Context, limit, offset int, includeDeleted bool) ([]models.Screen, error) {
	log := logger.FromContext(ctx)

	if limit < 0 || offset < 0 {
		log.Error().Str("func", "*screenService.ListScreens").Int("limit", limit).Int("offset", offset).Msg("negative pagination provided")
		return nil, ErrInvalidDataProvided
	}

	screens, err := s.screenRepository.GetScreens(ctx, limit, offset, includeDeleted)
	if err != nil {
		log.Err(err).Str("func", "*screenService.ListScreens").Msg("screen listing failed")
		return nil, fmt.Errorf("screen listing failed: %w", err)
	}

	return screens, nil
}

// SearchScreens returns screens whose name contains the query.
func (s *screenService) SearchScreens(ctx context.Context, query string) ([]models.Screen, error) {
	log := logger.FromContext(ctx)

	if query == "" {
		log.Error().Str("func", "*screenService.SearchScreens").Msg("empty search query provided")
		return nil, ErrInvalidDataProvided
	}

	screens, err := s.screenRepository.SearchScreens(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*screenService.SearchScreens").Str("query", query).Msg("screen search failed")
		return nil, fmt.Errorf("screen search failed: %w", err)
	}

	return screens, nil
}

// CountScreens returns the number of live (non-tombstoned) screens.
func (s *screenService) CountScreens(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	count, err := s.screenRepository.CountScreens(ctx)
	if err != nil {
		log.Err(err).Str("func", "*screenService.CountScreens").Msg("screen count failed")
		return 0, fmt.Errorf("screen count failed: %w", err)
	}

	return count, nil
}
