package handler

import (
	"errors"
	"net/http"
	"time"

	groupdomain "exercise-app-go/internal/domain/group"
)

type createGroupRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	PhotoURL          *string  `json:"photoUrl"`
	GoalRep           int      `json:"goalRep"`
	Tags              []string `json:"tags"`
	DiscordWebhookURL *string  `json:"discordWebhookUrl"`
	DiscordInviteURL  *string  `json:"discordInviteUrl"`
	OwnerNickname     string   `json:"ownerNickname"`
	OwnerPassword     string   `json:"ownerPassword"`
}

type updateGroupRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	PhotoURL          *string  `json:"photoUrl"`
	GoalRep           int      `json:"goalRep"`
	Tags              []string `json:"tags"`
	DiscordWebhookURL *string  `json:"discordWebhookUrl"`
	DiscordInviteURL  *string  `json:"discordInviteUrl"`
	OwnerPassword     string   `json:"ownerPassword"`
}

type deleteGroupRequest struct {
	OwnerPassword string `json:"ownerPassword"`
}

type groupResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	PhotoURL          *string   `json:"photoUrl"`
	GoalRep           int       `json:"goalRep"`
	Tags              []string  `json:"tags"`
	DiscordWebhookURL *string   `json:"discordWebhookUrl"`
	DiscordInviteURL  *string   `json:"discordInviteUrl"`
	LikeCount         int64     `json:"likeCount"`
	Badges            []string  `json:"badges"`
	OwnerID           *int64    `json:"ownerId"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type groupStatsResponse struct {
	groupResponse
	ParticipantCount int64   `json:"participantCount"`
	OwnerNickname    *string `json:"ownerNickname"`
}

type groupListResponse struct {
	Items []groupStatsResponse `json:"items"`
	Total int64                `json:"total"`
}

func (h *Handlers) ListGroups(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, offset, err := parsePage(query)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	filter := groupdomain.ListFilter{
		OrderBy: query.Get("orderBy"),
		Sort:    query.Get("order"),
		Limit:   limit,
		Offset:  offset,
	}

	groups, total, err := h.Groups.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, groupdomain.ErrInvalidOrder) {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.internalError(w, "group: list failed", err)
		return
	}

	items := make([]groupStatsResponse, 0, len(groups))
	for _, g := range groups {
		items = append(items, toGroupStatsResponse(g))
	}

	writeJSON(w, http.StatusOK, groupListResponse{Items: items, Total: total})
}

func (h *Handlers) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	input := groupdomain.CreateInput{
		Name:              req.Name,
		Description:       req.Description,
		PhotoURL:          req.PhotoURL,
		GoalRep:           req.GoalRep,
		Tags:              req.Tags,
		DiscordWebhookURL: req.DiscordWebhookURL,
		DiscordInviteURL:  req.DiscordInviteURL,
		OwnerNickname:     req.OwnerNickname,
		OwnerPassword:     req.OwnerPassword,
	}

	created, err := h.Groups.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, groupdomain.ErrNameRequired),
			errors.Is(err, groupdomain.ErrInvalidGoalRep),
			errors.Is(err, groupdomain.ErrOwnerRequired):
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.internalError(w, "group: create failed", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, toGroupResponse(*created))
}

func (h *Handlers) GetGroup(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	g, err := h.Groups.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, groupdomain.ErrGroupNotFound) {
			writeError(w, http.StatusNotFound, "group_not_found", "group not found")
			return
		}
		h.internalError(w, "group: get failed", err)
		return
	}

	writeJSON(w, http.StatusOK, toGroupStatsResponse(*g))
}

func (h *Handlers) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	var req updateGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	input := groupdomain.UpdateInput{
		ID:                id,
		Name:              req.Name,
		Description:       req.Description,
		PhotoURL:          req.PhotoURL,
		GoalRep:           req.GoalRep,
		Tags:              req.Tags,
		DiscordWebhookURL: req.DiscordWebhookURL,
		DiscordInviteURL:  req.DiscordInviteURL,
		OwnerPassword:     req.OwnerPassword,
	}

	updated, err := h.Groups.Update(r.Context(), input)
	if err != nil {
		h.writeGroupMutationError(w, "group: update failed", err)
		return
	}

	writeJSON(w, http.StatusOK, toGroupResponse(*updated))
}

func (h *Handlers) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	var req deleteGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if err := h.Groups.Delete(r.Context(), id, req.OwnerPassword); err != nil {
		h.writeGroupMutationError(w, "group: delete failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) IncrementLike(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.Groups.IncrementLike(r.Context(), id)
	if err != nil {
		if errors.Is(err, groupdomain.ErrGroupNotFound) {
			writeError(w, http.StatusNotFound, "group_not_found", "group not found")
			return
		}
		h.internalError(w, "group: like increment failed", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) DecrementLike(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.Groups.DecrementLike(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, groupdomain.ErrGroupNotFound):
			writeError(w, http.StatusNotFound, "group_not_found", "group not found")
		case errors.Is(err, groupdomain.ErrLikeCountAtZero):
			writeError(w, http.StatusBadRequest, "like_count_at_zero", err.Error())
		default:
			h.internalError(w, "group: like decrement failed", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) writeGroupMutationError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, groupdomain.ErrGroupNotFound):
		writeError(w, http.StatusNotFound, "group_not_found", "group not found")
	case errors.Is(err, groupdomain.ErrOwnerNotFound):
		writeError(w, http.StatusNotFound, "owner_not_found", "group owner not found")
	case errors.Is(err, groupdomain.ErrPasswordMismatch):
		writeError(w, http.StatusUnauthorized, "password_mismatch", "owner password mismatch")
	case errors.Is(err, groupdomain.ErrNameRequired),
		errors.Is(err, groupdomain.ErrInvalidGoalRep):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		h.internalError(w, message, err)
	}
}

func (h *Handlers) internalError(w http.ResponseWriter, message string, err error) {
	h.log.InternalError(message, err)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}

func toGroupResponse(g groupdomain.Group) groupResponse {
	return groupResponse{
		ID:                g.ID,
		Name:              g.Name,
		Description:       g.Description,
		PhotoURL:          g.PhotoURL,
		GoalRep:           g.GoalRep,
		Tags:              g.Tags,
		DiscordWebhookURL: g.DiscordWebhookURL,
		DiscordInviteURL:  g.DiscordInviteURL,
		LikeCount:         g.LikeCount,
		Badges:            g.Badges,
		OwnerID:           g.OwnerID,
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}
}

func toGroupStatsResponse(g groupdomain.GroupWithStats) groupStatsResponse {
	return groupStatsResponse{
		groupResponse:    toGroupResponse(g.Group),
		ParticipantCount: g.ParticipantCount,
		OwnerNickname:    g.OwnerNickname,
	}
}
