package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/kalculo-backend/internal/config"
	"github.com/heartmarshall/kalculo-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// RouterDeps holds everything NewRouter wires together. Limiter may be nil.
type RouterDeps struct {
	Health             *HealthHandler
	Drafts             *DraftHandler
	MacroTargets       *MacroTargetHandler
	Tokens             tokenValidator
	Limiter            *middleware.RateLimiter
	RateLimitPerMinute int
	CORS               config.CORSConfig
	Logger             *slog.Logger
}

// NewRouter builds the HTTP handler: health checks at the root, the API under /v1.
func NewRouter(d RouterDeps) http.Handler {
	authed := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h)
	}

	api := http.NewServeMux()
	api.HandleFunc("GET /v1/foods", d.Drafts.ListFoods)

	const draft = "/v1/children/{childID}/drafts/{day}"
	api.Handle("GET "+draft, authed(d.Drafts.GetDraft))
	api.Handle("POST "+draft+"/lines", authed(d.Drafts.AddLine))
	api.Handle("PATCH "+draft+"/lines/{lineID}", authed(d.Drafts.UpdateLine))
	api.Handle("DELETE "+draft+"/lines/{lineID}", authed(d.Drafts.RemoveLine))
	api.Handle("POST "+draft+"/lines/{lineID}/move", authed(d.Drafts.MoveLine))
	api.Handle("GET "+draft+"/compliance", authed(d.Drafts.Compliance))
	api.Handle("POST "+draft+"/lock", authed(d.Drafts.Lock))
	api.Handle("GET "+draft+"/share-authorization", authed(d.Drafts.ShareAuthorization))

	const targets = "/v1/children/{childID}/macro-targets"
	api.Handle("PUT "+targets, authed(d.MacroTargets.Set))
	api.Handle("GET "+targets, authed(d.MacroTargets.Get))
	api.Handle("GET "+targets+"/history", authed(d.MacroTargets.History))

	root := http.NewServeMux()
	root.HandleFunc("GET /live", d.Health.Live)
	root.HandleFunc("GET /ready", d.Health.Ready)
	root.HandleFunc("GET /health", d.Health.Health)
	root.Handle("/v1/", api)

	var limit middleware.Middleware
	if d.Limiter != nil {
		limit = d.Limiter.Limit(d.RateLimitPerMinute)
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
		// Auth runs before Logger so request logs carry parent_id.
		middleware.Auth(d.Tokens),
		middleware.Logger(d.Logger),
		limit,
	)(root)
}
