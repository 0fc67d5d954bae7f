package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alekhya-chintada/skillmatrix/core"
	"github.com/alekhya-chintada/skillmatrix/match"
	"github.com/alekhya-chintada/skillmatrix/query"
	"github.com/alekhya-chintada/skillmatrix/search"
)

// Searcher answers queries. *search.Searcher satisfies it.
type Searcher interface {
	Search(ctx context.Context, phrase match.Phrase, queryText string) (*search.Result, error)
	SearchText(ctx context.Context, text string) (*search.Result, error)
}

// CorpusReloader exposes the live corpus and rebuilds it on demand.
type CorpusReloader interface {
	search.CorpusSource
	Reload(ctx context.Context) error
}

// Server is the HTTP front end.
type Server struct {
	app      *fiber.App
	searcher Searcher
	corpus   CorpusReloader
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithGatherer exposes the gatherer's metrics on /metrics. Without it the
// route is not registered.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// New creates the server and registers its routes.
func New(searcher Searcher, corpus CorpusReloader, opts ...Option) (*Server, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}
	if corpus == nil {
		return nil, ErrCorpusRequired
	}

	s := &Server{
		searcher: searcher,
		corpus:   corpus,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "server")

	s.app = fiber.New(fiber.Config{AppName: "skillmatrix"})
	s.app.Use(accessLog(s.logger))
	s.app.Use(errorMiddleware(s.logger))
	s.registerRoutes()

	return s, nil
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", s.health)

	v1 := s.app.Group("/api").Group("/v1")
	v1.Get("/search", s.search)
	v1.Post("/reload", s.reload)

	if s.gatherer != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.logger.Info("listening", "addr", addr)
	return s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) health(c fiber.Ctx) error {
	return Success(c, fiber.StatusOK, MessageOK, HealthResponse{
		Status:   "up",
		Profiles: s.corpus.Corpus().Len(),
	})
}

func (s *Server) search(c fiber.Ctx) error {
	var (
		result *search.Result
		err    error
	)
	if raw := strings.TrimSpace(c.Query("phrase")); raw != "" {
		phrase := match.ParsePhrase(query.Rewrite(strings.ToLower(raw)))
		result, err = s.searcher.Search(c.Context(), phrase, raw)
	} else if q := strings.TrimSpace(c.Query("q")); q != "" {
		result, err = s.searcher.SearchText(c.Context(), q)
	} else {
		err = core.ErrNoPhrase
	}

	if err != nil {
		if errors.Is(err, core.ErrNoPhrase) {
			return NewAppError(fiber.StatusUnprocessableEntity, MessageNoPhrase, nil, err)
		}
		return err
	}
	return Success(c, fiber.StatusOK, MessageOK, toSearchResponse(result))
}

func (s *Server) reload(c fiber.Ctx) error {
	if err := s.corpus.Reload(c.Context()); err != nil {
		return err
	}
	return Success(c, fiber.StatusOK, MessageOK, ReloadResponse{Profiles: s.corpus.Corpus().Len()})
}
