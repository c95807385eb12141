package health

import (
	"net/http"

	"horizon/config"
	"horizon/infras/otel"
	"horizon/infras/postgres"
	"horizon/shared/constant"
	"horizon/transport/http/response"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Status struct {
	Status   string `json:"status"`
	App      string `json:"app"`
	Env      string `json:"env"`
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}

type Handler struct {
	cfg   *config.Config
	db    *postgres.Connection
	redis *goRedis.Client
	otel  otel.Otel
}

func New(cfg *config.Config, db *postgres.Connection, redis *goRedis.Client, otel otel.Otel) Handler {
	return Handler{
		cfg:   cfg,
		db:    db,
		redis: redis,
		otel:  otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports service liveness and its backing connections.
// @Summary Health check
// @Description Report service status along with database and cache connectivity.
// @Tags Health
// @Produce json
// @Success 200 {object} health.Status "Service is healthy"
// @Failure 503 {object} health.Status "A backing service is unreachable"
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	status := Status{
		Status:   "ok",
		App:      handler.cfg.App.Name,
		Env:      handler.cfg.Server.Env,
		Postgres: "up",
		Redis:    "up",
	}
	code := http.StatusOK

	if err := handler.db.Read.PingContext(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("postgres ping failed")

		status.Status = "degraded"
		status.Postgres = "down"
		code = http.StatusServiceUnavailable
	}

	if err := handler.redis.Ping(ctx).Err(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("redis ping failed")

		status.Status = "degraded"
		status.Redis = "down"
		code = http.StatusServiceUnavailable
	}

	response.WithJSON(w, code, status)
}
