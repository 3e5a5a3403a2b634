package handler

import (
	"errors"
	"net/http"
	"time"

	participantdomain "exercise-app-go/internal/domain/participant"
)

type participantRequest struct {
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

type participantResponse struct {
	ID        int64     `json:"id"`
	Nickname  string    `json:"nickname"`
	GroupID   int64     `json:"groupId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *Handlers) JoinGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	var req participantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	p, err := h.Participants.Join(r.Context(), participantdomain.JoinInput{
		GroupID:  groupID,
		Nickname: req.Nickname,
		Password: req.Password,
	})
	if err != nil {
		h.writeParticipantError(w, "participant: join failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, participantResponse{
		ID:        p.ID,
		Nickname:  p.Nickname,
		GroupID:   p.GroupID,
		CreatedAt: p.CreatedAt,
	})
}

func (h *Handlers) LeaveGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	var req participantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	err = h.Participants.Leave(r.Context(), participantdomain.LeaveInput{
		GroupID:  groupID,
		Nickname: req.Nickname,
		Password: req.Password,
	})
	if err != nil {
		h.writeParticipantError(w, "participant: leave failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) writeParticipantError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, participantdomain.ErrNicknameRequired),
		errors.Is(err, participantdomain.ErrPasswordRequired):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, participantdomain.ErrGroupNotFound):
		writeError(w, http.StatusNotFound, "group_not_found", "group not found")
	case errors.Is(err, participantdomain.ErrParticipantNotFound):
		writeError(w, http.StatusNotFound, "participant_not_found", "participant not found")
	case errors.Is(err, participantdomain.ErrNicknameTaken):
		writeError(w, http.StatusConflict, "nickname_taken", err.Error())
	case errors.Is(err, participantdomain.ErrPasswordMismatch):
		writeError(w, http.StatusUnauthorized, "password_mismatch", "password mismatch")
	default:
		h.internalError(w, message, err)
	}
}
