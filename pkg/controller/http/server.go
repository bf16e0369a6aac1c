// Package http exposes the REST API of the risk survey and compliance
// engine.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sesmt-lab/sentinela/pkg/usecase"
	"github.com/sesmt-lab/sentinela/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()
	s := &Server{
		router: r,
		uc:     uc,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/companies", func(r chi.Router) {
			r.Post("/", s.createCompany)
			r.Get("/", s.listCompanies)
			r.Route("/{companyID}", func(r chi.Router) {
				r.Get("/", s.getCompany)
				r.Get("/checklists", s.listChecklists)
				r.Get("/environments", s.listEnvironments)
				r.Get("/inspections", s.listInspections)
				r.Get("/compliance", s.companyCompliance)
			})
		})

		r.Route("/environments", func(r chi.Router) {
			r.Post("/", s.createEnvironment)
			r.Route("/{environmentID}", func(r chi.Router) {
				r.Get("/", s.getEnvironment)
				r.Post("/finalize", s.finalizeEnvironment)
				r.Post("/roles", s.addRole)
				r.Get("/roles", s.listRoles)
				r.Post("/activities", s.addActivity)
				r.Get("/activities", s.listActivities)
			})
		})

		r.Get("/activities/{activityID}/risks", s.listRisks)

		r.Route("/risks", func(r chi.Router) {
			r.Post("/", s.createRisk)
			r.Route("/{riskID}", func(r chi.Router) {
				r.Get("/", s.getRisk)
				r.Delete("/", s.deleteRisk)
				r.Put("/assessment", s.upsertAssessment)
				r.Get("/assessment", s.getAssessment)
				r.Post("/measurements", s.recordMeasurement)
				r.Get("/measurements", s.listMeasurements)
			})
		})

		r.Delete("/measurements/{measurementID}", s.deleteMeasurement)

		r.Post("/inspections", s.recordInspection)

		r.Post("/legacy/import", s.importLegacy)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
