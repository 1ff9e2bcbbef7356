package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/internal/service"
	"github.com/MKhiriev/go-screen-sync/internal/store"
	"github.com/MKhiriev/go-screen-sync/internal/utils"
	"github.com/MKhiriev/go-screen-sync/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) pushScreen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.pushScreen").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	ack, current, err := h.services.ScreenService.PushScreen(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrVersionConflict):
			// The rejected agent rebases on the server copy, so the
			// conflict response carries it in full.
			log.Warn().
				Str("func", "*Handler.pushScreen").
				Str("screen_id", req.Screen.ScreenID).
				Int64("base_version", req.BaseVersion).
				Int64("server_version", current.Version).
				Msg("stale base version, returning current server copy")
			utils.WriteJSON(w, current, http.StatusConflict)
			return
		case errors.Is(err, service.ErrInvalidScreen):
			log.Err(err).Str("func", "*Handler.pushScreen").Msg("invalid push request")
			http.Error(w, service.ErrInvalidScreen.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("func", "*Handler.pushScreen").Str("screen_id", req.Screen.ScreenID).Msg("error applying pushed mutation")
			http.Error(w, "error applying pushed mutation", statusFromError(err))
			return
		}
	}

	h.publishChange(req.Operation, current)

	utils.WriteJSON(w, ack, http.StatusOK)
}

func (h *Handler) getScreen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	screenID := chi.URLParam(r, "screenID")

	screen, err := h.services.ScreenService.GetScreen(ctx, screenID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrScreenNotFound):
			log.Err(err).Str("func", "*Handler.getScreen").Str("screen_id", screenID).Msg("screen was not found")
			http.Error(w, store.ErrScreenNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.getScreen").Str("screen_id", screenID).Msg("error getting screen")
			http.Error(w, "error getting screen", statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, screen, http.StatusOK)
}

func (h *Handler) deleteScreen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	screenID := chi.URLParam(r, "screenID")
	baseVersion, err := strconv.ParseInt(r.URL.Query().Get("base_version"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteScreen").Str("screen_id", screenID).Msg("invalid base_version parameter")
		http.Error(w, "invalid base_version parameter", http.StatusBadRequest)
		return
	}

	req := models.PushRequest{
		Screen:      models.Screen{ScreenID: screenID},
		Operation:   models.OpDelete,
		BaseVersion: baseVersion,
	}

	ack, current, err := h.services.ScreenService.PushScreen(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrVersionConflict):
			log.Warn().
				Str("func", "*Handler.deleteScreen").
				Str("screen_id", screenID).
				Int64("base_version", baseVersion).
				Int64("server_version", current.Version).
				Msg("stale base version, returning current server copy")
			utils.WriteJSON(w, current, http.StatusConflict)
			return
		case errors.Is(err, store.ErrScreenNotFound):
			log.Err(err).Str("func", "*Handler.deleteScreen").Str("screen_id", screenID).Msg("screen was not found")
			http.Error(w, store.ErrScreenNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.deleteScreen").Str("screen_id", screenID).Msg("error deleting screen")
			http.Error(w, "error deleting screen", statusFromError(err))
			return
		}
	}

	h.publishChange(models.OpDelete, current)

	utils.WriteJSON(w, ack, http.StatusOK)
}

func (h *Handler) listScreens(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	limit, offset, err := paginationParams(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listScreens").Msg("invalid pagination parameters")
		http.Error(w, "invalid pagination parameters", http.StatusBadRequest)
		return
	}
	includeDeleted, _ := strconv.ParseBool(r.URL.Query().Get("include_deleted"))

	screens, err := h.services.ScreenService.ListScreens(ctx, limit, offset, includeDeleted)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listScreens").Msg("error listing screens")
		http.Error(w, "error listing screens", statusFromError(err))
		return
	}

	response := models.ScreenListResponse{
		Screens: screens,
		Length:  len(screens),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) searchScreens(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query().Get("q")

	screens, err := h.services.ScreenService.SearchScreens(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.searchScreens").Str("query", query).Msg("error searching screens")
		http.Error(w, "error searching screens", statusFromError(err))
		return
	}

	response := models.ScreenListResponse{
		Screens: screens,
		Length:  len(screens),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) countScreens(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	count, err := h.services.ScreenService.CountScreens(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.countScreens").Msg("error counting screens")
		http.Error(w, "error counting screens", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ScreenCountResponse{Count: count}, http.StatusOK)
}

func paginationParams(r *http.Request) (limit, offset int, err error) {
	query := r.URL.Query()

	if raw := query.Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return 0, 0, err
		}
	}
	if raw := query.Get("offset"); raw != "" {
		if offset, err = strconv.Atoi(raw); err != nil {
			return 0, 0, err
		}
	}

	return limit, offset, nil
}
