package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireJob(
	r chi.Router,
	jobHandler *adaptor.JobHandler,
	tokens *utils.TokenManager,
	log *zap.Logger,
) {
	r.Route("/api/jobs", func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		r.Post("/release-notification", jobHandler.TriggerReleaseNotification)
	})
}
