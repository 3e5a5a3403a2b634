package handler

import (
	"net/http"

	groupdomain "exercise-app-go/internal/domain/group"
	participantdomain "exercise-app-go/internal/domain/participant"
	rankingdomain "exercise-app-go/internal/domain/ranking"
	recorddomain "exercise-app-go/internal/domain/record"
	"exercise-app-go/pkg/logger"
)

type Handlers struct {
	Groups       *groupdomain.Service
	Participants *participantdomain.Service
	Records      *recorddomain.Service
	Rankings     *rankingdomain.Service
	log          logger.Logger
}

func New(groups *groupdomain.Service, participants *participantdomain.Service, records *recorddomain.Service, rankings *rankingdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Groups:       groups,
		Participants: participants,
		Records:      records,
		Rankings:     rankings,
		log:          log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
