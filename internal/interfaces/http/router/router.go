package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar registers routes on a router group
type RouteRegistrar interface {
	Register(group *gin.RouterGroup)
}

// Router owns the API route tree under /api/v1.
// Three surfaces hang off it: the public storefront, the admin area and
// the webhook callbacks. Authentication is applied at the /api/v1 level
// by a skip-path aware JWT middleware, so the public surface is whatever
// that middleware skips; webhooks additionally carry their own shared
// token check.
type Router struct {
	engine   *gin.Engine
	api      *gin.RouterGroup
	admin    *gin.RouterGroup
	webhooks *gin.RouterGroup
}

// New creates a router on the given engine.
// jwtAuth guards all of /api/v1 minus its skip paths; webhookAuth is the
// shared token check for /api/v1/webhooks.
func New(engine *gin.Engine, jwtAuth, webhookAuth gin.HandlerFunc) *Router {
	api := engine.Group("/api/v1")
	if jwtAuth != nil {
		api.Use(jwtAuth)
	}

	admin := api.Group("/admin")

	webhooks := api.Group("/webhooks")
	if webhookAuth != nil {
		webhooks.Use(webhookAuth)
	}

	return &Router{
		engine:   engine,
		api:      api,
		admin:    admin,
		webhooks: webhooks,
	}
}

// Public registers registrars on the /api/v1 surface
func (r *Router) Public(registrars ...RouteRegistrar) {
	for _, registrar := range registrars {
		registrar.Register(r.api)
	}
}

// Admin registers registrars on the /api/v1/admin surface
func (r *Router) Admin(registrars ...RouteRegistrar) {
	for _, registrar := range registrars {
		registrar.Register(r.admin)
	}
}

// Webhooks registers registrars on the /api/v1/webhooks surface
func (r *Router) Webhooks(registrars ...RouteRegistrar) {
	for _, registrar := range registrars {
		registrar.Register(r.webhooks)
	}
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// PublicSkipPaths lists the exact /api/v1 paths that bypass JWT auth
func PublicSkipPaths() []string {
	return []string{
		"/api/v1/auth/login",
		"/api/v1/auth/refresh",
		"/api/v1/config",
		"/api/v1/categories",
		"/api/v1/messages",
	}
}

// PublicSkipPrefixes lists the /api/v1 path prefixes that bypass JWT auth.
// Webhooks authenticate with their own shared token instead.
func PublicSkipPrefixes() []string {
	return []string{
		"/api/v1/orders",
		"/api/v1/webhooks",
	}
}
