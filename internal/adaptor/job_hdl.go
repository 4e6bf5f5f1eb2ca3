package adaptor

import (
	"net/http"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type JobHandler struct {
	notify usecase.NotifyService
	log    *zap.Logger
}

func NewJobHandler(notify usecase.NotifyService, log *zap.Logger) *JobHandler {
	return &JobHandler{
		notify: notify,
		log:    log.With(zap.String("handler", "job")),
	}
}

// TriggerReleaseNotification handles POST /api/jobs/release-notification.
// It runs the same hook the schedule uses. There is no duplicate-send
// guard; triggering twice in one day sends twice.
func (h *JobHandler) TriggerReleaseNotification(w http.ResponseWriter, r *http.Request) {
	email, _ := utils.GetEmailFromContext(r.Context())
	h.log.Info("Release notification job triggered manually",
		zap.String("triggered_by", email),
	)
	h.notify.Run(r.Context())
	utils.ResponseSuccess(w, "Release notification job completed", nil)
}
