package handler

import (
	"errors"
	"net/http"

	rankingdomain "exercise-app-go/internal/domain/ranking"
)

func (h *Handlers) GetRanking(w http.ResponseWriter, r *http.Request) {
	groupID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	period, err := rankingdomain.ParsePeriod(r.URL.Query().Get("duration"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_duration", err.Error())
		return
	}

	entries, err := h.Rankings.TopParticipants(r.Context(), groupID, period)
	if err != nil {
		if errors.Is(err, rankingdomain.ErrGroupNotFound) {
			writeError(w, http.StatusNotFound, "group_not_found", "group not found")
			return
		}
		h.internalError(w, "ranking: query failed", err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
