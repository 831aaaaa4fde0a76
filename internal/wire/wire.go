package wire

import (
	"context"
	"net/http"
	"time"

	"book-my-property/internal/adaptor"
	"book-my-property/internal/data/entity"
	"book-my-property/internal/data/repository"
	"book-my-property/internal/usecase"
	"book-my-property/pkg/middleware"
	"book-my-property/pkg/ratelimit"
	"book-my-property/pkg/token"
	"book-my-property/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the process level resources the API is built from.
// Limiter and Registry are optional; nil disables rate limiting and metrics.
type Deps struct {
	Store    repository.Store
	DB       Pinger
	Tokens   *token.Manager
	Limiter  ratelimit.Limiter
	Registry *prometheus.Registry
	Config   *utils.Config
	Logger   *zap.Logger
}

type App struct {
	Router http.Handler
}

// guards are the per-route access checks shared by every wire function.
type guards struct {
	authn     func(http.Handler) http.Handler
	agent     func(http.Handler) http.Handler
	admin     func(http.Handler) http.Handler
	rateLimit func(http.Handler) http.Handler
}

func Wiring(deps Deps) (*App, error) {
	service, err := usecase.NewService(deps.Store, deps.Tokens, deps.Config, deps.Logger)
	if err != nil {
		return nil, err
	}
	handler := adaptor.NewHandler(service, deps.Logger)

	router, err := setupRouter(handler, deps)
	if err != nil {
		return nil, err
	}

	return &App{
		Router: otelhttp.NewHandler(router, "http.server",
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		),
	}, nil
}

func setupRouter(handler *adaptor.Handler, deps Deps) (*chi.Mux, error) {
	log := deps.Logger
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.CORS(deps.Config.App.CORSOrigins))

	if deps.Registry != nil {
		metrics, err := middleware.NewMetrics(deps.Registry)
		if err != nil {
			return nil, err
		}
		r.Use(metrics.Handler)
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	g := guards{
		authn:     middleware.Authenticate(deps.Tokens, log),
		agent:     middleware.RequireRole(log, entity.RoleAgent, entity.RoleAdmin),
		admin:     middleware.RequireRole(log, entity.RoleAdmin),
		rateLimit: passThrough,
	}
	if deps.Limiter != nil {
		g.rateLimit = middleware.RateLimit(deps.Limiter, "auth", log)
	}

	wireAuth(r, handler.Auth, g)
	wireUser(r, handler.User, g)
	wireProperty(r, handler, g)
	wireCatalog(r, handler.Catalog, g)
	wireInquiry(r, handler.Inquiry, g)
	wireWishlist(r, handler.Wishlist, g)

	r.Get("/health", health(deps.DB, log))

	return r, nil
}

func passThrough(next http.Handler) http.Handler { return next }

// health reports 503 when the database does not answer a ping.
func health(db Pinger, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if db != nil {
			if err := db.Ping(ctx); err != nil {
				utils.LoggerFrom(r.Context(), log).Error("Health check failed", zap.Error(err))
				utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "database unavailable", nil, nil)
				return
			}
		}

		utils.ResponseSuccess(w, "OK", nil)
	}
}
