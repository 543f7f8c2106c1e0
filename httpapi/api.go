// Package httpapi exposes the services over a JSON HTTP surface. Identity
// arrives pre-resolved in headers: the gateway in front terminates auth.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tapp-eng/campaign-core/pkg/otellib"
	"github.com/tapp-eng/campaign-core/repository"
	"github.com/tapp-eng/campaign-core/service/analytics"
	"github.com/tapp-eng/campaign-core/service/campaignmgmt"
	"github.com/tapp-eng/campaign-core/service/lifecycle"
	"github.com/tapp-eng/campaign-core/service/roster"
	"github.com/tapp-eng/campaign-core/service/submission"
)

// Server holds the service dependencies of the HTTP handlers.
type Server struct {
	campaigns   campaignmgmt.IService
	lifecycles  lifecycle.IService
	rosters     roster.IService
	submissions submission.IService
	analytic    analytics.IService

	provider   repository.Provider
	activities repository.Activity

	logger *zap.Logger
}

// NewServer ...
func NewServer(
	campaigns campaignmgmt.IService,
	lifecycles lifecycle.IService,
	rosters roster.IService,
	submissions submission.IService,
	analytic analytics.IService,
	provider repository.Provider,
	activities repository.Activity,
	logger *zap.Logger,
) *Server {
	return &Server{
		campaigns:   campaigns,
		lifecycles:  lifecycles,
		rosters:     rosters,
		submissions: submissions,
		analytic:    analytic,
		provider:    provider,
		activities:  activities,
		logger:      logger,
	}
}

// Router builds the full route tree including /metrics and /healthz.
func (s *Server) Router() chi.Router {
	router := chi.NewRouter()

	router.Use(recoverMiddleware(s.logger))
	router.Use(otellib.SetTraceInfoMiddleware(s.logger))
	router.Use(requestLogMiddleware)

	router.Get("/healthz", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1/campaigns", func(router chi.Router) {
		router.Post("/", s.handleCreateCampaign)
		router.Get("/slug/{slug}", s.handleGetCampaignBySlug)

		router.Route("/{campaignID}", func(router chi.Router) {
			router.Get("/", s.handleGetCampaign)
			router.Put("/", s.handleUpdateCampaign)
			router.Delete("/", s.handleDeleteCampaign)

			router.Post("/schedule", s.handleSchedule)
			router.Post("/end", s.handleEndNow)
			router.Post("/archive", s.handleArchive)
			router.Get("/is-open", s.handleIsOpen)

			router.Get("/products", s.handleGetProducts)
			router.Put("/products", s.handleSetProducts)

			router.Get("/participants", s.handleListParticipants)
			router.Post("/participants", s.handleInviteParticipants)
			router.Delete("/participants/{userID}", s.handleRemoveParticipant)
			router.Post("/participants/{userID}/dismiss-banner", s.handleDismissBanner)

			router.Get("/responses", s.handleListResponses)
			router.Post("/responses", s.handleSubmit)
			router.Post("/responses/{userID}", s.handleSubmitOnBehalf)
			router.Delete("/responses/{userID}", s.handleDeleteResponse)
			router.Get("/responses/{userID}/latest", s.handleLatestResponse)
			router.Get("/responses/{userID}/versions", s.handleResponseVersions)

			router.Get("/stats", s.handleStats)
			router.Get("/summary", s.handleProductSummary)
			router.Get("/activity", s.handleListActivity)
		})
	})

	return router
}

func (s *Server) handleHealth(writer http.ResponseWriter, _ *http.Request) {
	writeJSON(writer, http.StatusOK, map[string]string{"status": "ok"})
}
