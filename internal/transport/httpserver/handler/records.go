package handler

import (
	"errors"
	"net/http"
	"time"

	recorddomain "exercise-app-go/internal/domain/record"
)

type createRecordRequest struct {
	ExerciseType   string   `json:"exerciseType"`
	Description    string   `json:"description"`
	Time           int64    `json:"time"`
	Distance       float64  `json:"distance"`
	Photos         []string `json:"photos"`
	AuthorNickname string   `json:"authorNickname"`
	AuthorPassword string   `json:"authorPassword"`
}

type recordResponse struct {
	ID             int64     `json:"id"`
	ExerciseType   string    `json:"exerciseType"`
	Description    string    `json:"description"`
	Time           int64     `json:"time"`
	Distance       float64   `json:"distance"`
	Photos         []string  `json:"photos"`
	AuthorID       *int64    `json:"authorId"`
	AuthorNickname *string   `json:"authorNickname"`
	GroupID        int64     `json:"groupId"`
	CreatedAt      time.Time `json:"createdAt"`
}

type recordListResponse struct {
	Items []recordResponse `json:"items"`
	Total int64            `json:"total"`
}

func (h *Handlers) CreateRecord(w http.ResponseWriter, r *http.Request) {
	groupID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	var req createRecordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	created, err := h.Records.Create(r.Context(), recorddomain.CreateInput{
		GroupID:        groupID,
		ExerciseType:   req.ExerciseType,
		Description:    req.Description,
		Time:           req.Time,
		Distance:       req.Distance,
		Photos:         req.Photos,
		AuthorNickname: req.AuthorNickname,
		AuthorPassword: req.AuthorPassword,
	})
	if err != nil {
		h.writeRecordError(w, "record: create failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, toRecordResponse(*created))
}

func (h *Handlers) ListRecords(w http.ResponseWriter, r *http.Request) {
	groupID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	query := r.URL.Query()
	limit, offset, err := parsePage(query)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	filter := recorddomain.ListFilter{
		OrderBy: query.Get("orderBy"),
		Sort:    query.Get("order"),
		Search:  query.Get("search"),
		Limit:   limit,
		Offset:  offset,
	}

	records, total, err := h.Records.List(r.Context(), groupID, filter)
	if err != nil {
		h.writeRecordError(w, "record: list failed", err)
		return
	}

	items := make([]recordResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, toRecordResponse(rec))
	}

	writeJSON(w, http.StatusOK, recordListResponse{Items: items, Total: total})
}

func (h *Handlers) GetRecord(w http.ResponseWriter, r *http.Request) {
	groupID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	recordID, err := parseIDParam(r, "recordId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	rec, err := h.Records.Get(r.Context(), groupID, recordID)
	if err != nil {
		h.writeRecordError(w, "record: get failed", err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(*rec))
}

func (h *Handlers) writeRecordError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, recorddomain.ErrInvalidExerciseType),
		errors.Is(err, recorddomain.ErrInvalidTime),
		errors.Is(err, recorddomain.ErrInvalidDistance),
		errors.Is(err, recorddomain.ErrTooManyPhotos),
		errors.Is(err, recorddomain.ErrInvalidOrder):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, recorddomain.ErrGroupNotFound):
		writeError(w, http.StatusNotFound, "group_not_found", "group not found")
	case errors.Is(err, recorddomain.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, "record_not_found", "record not found")
	case errors.Is(err, recorddomain.ErrAuthorAuthFailed):
		writeError(w, http.StatusUnauthorized, "author_auth_failed", err.Error())
	default:
		h.internalError(w, message, err)
	}
}

func toRecordResponse(rec recorddomain.RecordWithAuthor) recordResponse {
	return recordResponse{
		ID:             rec.ID,
		ExerciseType:   rec.ExerciseType,
		Description:    rec.Description,
		Time:           rec.Time,
		Distance:       rec.Distance,
		Photos:         rec.Photos,
		AuthorID:       rec.AuthorID,
		AuthorNickname: rec.AuthorNickname,
		GroupID:        rec.GroupID,
		CreatedAt:      rec.CreatedAt,
	}
}
