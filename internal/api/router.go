package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bcstudio-server/internal/auth"
	"bcstudio-server/internal/briefing"
	"bcstudio-server/internal/clients"
	"bcstudio-server/internal/common/config"
	"bcstudio-server/internal/common/database"
	"bcstudio-server/internal/common/logger"
	"bcstudio-server/internal/common/observability"
	"bcstudio-server/internal/contract"
	"bcstudio-server/internal/copygen"
	"bcstudio-server/internal/library"
	"bcstudio-server/internal/notify"
	"bcstudio-server/internal/profile"
)

// Server wires the domain services into the HTTP surface.
type Server struct {
	cfg    config.Config
	logger logger.Logger

	auth      *auth.Service
	briefings *briefing.Service
	copies    *copygen.Service
	contracts *contract.Service
	library   *library.Service
	clients   *clients.Service
	profiles  *profile.Service
	notifier  *notify.Notifier

	db      *database.PostgresClient
	redis   *database.RedisClient
	obs     *observability.Observability
	tracing *observability.Tracing
}

// Deps carries everything the server needs. Optional fields may be nil.
type Deps struct {
	Config config.Config
	Logger logger.Logger

	Auth      *auth.Service
	Briefings *briefing.Service
	Copies    *copygen.Service
	Contracts *contract.Service
	Library   *library.Service
	Clients   *clients.Service
	Profiles  *profile.Service
	Notifier  *notify.Notifier

	DB            *database.PostgresClient
	Redis         *database.RedisClient
	Observability *observability.Observability
	Tracing       *observability.Tracing
}

// NewServer creates the HTTP server facade.
func NewServer(deps Deps) *Server {
	return &Server{
		cfg:       deps.Config,
		logger:    deps.Logger,
		auth:      deps.Auth,
		briefings: deps.Briefings,
		copies:    deps.Copies,
		contracts: deps.Contracts,
		library:   deps.Library,
		clients:   deps.Clients,
		profiles:  deps.Profiles,
		notifier:  deps.Notifier,
		db:        deps.DB,
		redis:     deps.Redis,
		obs:       deps.Observability,
		tracing:   deps.Tracing,
	}
}

// Router builds the chi mux with the public briefing surface, the
// authenticated /v1 API and the operational endpoints.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.tracingMiddleware)
	r.Use(s.metricsMiddleware)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)
	r.Handle("/metrics", promhttp.Handler())

	// public surface, no auth: the end client fills the briefing here
	r.Route("/briefing/{token}", func(r chi.Router) {
		r.Get("/", s.handlePublicBriefing)
		r.Post("/", s.handleSubmitBriefing)
	})

	r.Route("/v1", func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Route("/briefings", func(r chi.Router) {
			r.Get("/", s.handleListBriefings)
			r.Post("/", s.handleCreateBriefing)
			r.Get("/{id}", s.handleGetBriefing)
			r.Delete("/{id}", s.handleDeleteBriefing)
			r.Get("/{id}/prompt", s.handleBriefingPrompt)
		})

		r.Post("/copy/generate", s.handleGenerateCopy)
		r.Route("/copies", func(r chi.Router) {
			r.Get("/", s.handleListCopies)
			r.Delete("/{id}", s.handleDeleteCopy)
		})

		r.Route("/library", func(r chi.Router) {
			r.Get("/posts", s.handleListPosts)
			r.Get("/posts/{slug}", s.handleGetPost)
			r.Get("/search", s.handleSearchPosts)
			r.Get("/lessons", s.handleListLessons)
			r.Get("/snippets", s.handleListSnippets)
			r.Get("/tips", s.handleListTips)
		})

		r.Route("/contracts", func(r chi.Router) {
			r.Get("/", s.handleListContracts)
			r.Post("/", s.handleCreateContract)
			r.Get("/{id}", s.handleGetContract)
			r.Get("/{id}/document", s.handleContractDocument)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", s.handleListClients)
			r.Post("/", s.handleCreateClient)
			r.Get("/{id}", s.handleGetClient)
			r.Put("/{id}", s.handleUpdateClient)
			r.Delete("/{id}", s.handleDeleteClient)
		})

		r.Get("/profile", s.handleGetProfile)
		r.Put("/profile/wd", s.handleUpsertWdProfile)
	})

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReadyz checks the hard dependencies. Redis is best effort; the
// server degrades to uncached reads without it.
func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "postgres unavailable"})
			return
		}
	}
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ready"})
}
