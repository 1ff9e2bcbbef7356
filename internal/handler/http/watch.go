package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/internal/utils"
	"github.com/MKhiriev/go-screen-sync/models"
)

func (h *Handler) watchScreens(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	clientID, found := utils.GetClientIDFromContext(r.Context())
	if !found {
		log.Error().Str("func", "*Handler.watchScreens").Msg("no client ID was given")
		http.Error(w, "no client ID was given", http.StatusBadRequest)
		return
	}

	h.feed.ServeWatch(w, r, clientID)
}

// publishChange fans one accepted mutation out to watching agents.
// Deletions travel without a screen copy; everything else carries the
// persisted server copy.
func (h *Handler) publishChange(operation models.OperationKind, current models.Screen) {
	event := models.ChangeEvent{
		ScreenID:   current.ScreenID,
		Kind:       models.EventSaved,
		OccurredAt: time.Now(),
	}
	if operation == models.OpDelete {
		event.Kind = models.EventDeleted
	} else {
		screen := current
		event.Screen = &screen
	}

	h.feed.Publish(event)
}
