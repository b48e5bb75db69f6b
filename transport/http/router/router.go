package router

import (
	"scaffold/config"
	"scaffold/internal/handlers/item"
	"scaffold/internal/handlers/todo"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Item item.Handler
	Todo todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	prefix         string
}

// SetupRoutes mounts every domain under the configured API prefix. An empty
// or "/" prefix registers the domains at the root.
func (r *Router) SetupRoutes(router chi.Router) {
	if r.prefix == "" || r.prefix == "/" {
		r.register(router)

		return
	}

	router.Route(r.prefix, r.register)
}

func (r *Router) register(routerGroup chi.Router) {
	r.DomainHandlers.Item.Router(routerGroup)
	r.DomainHandlers.Todo.Router(routerGroup)
}

func New(cfg *config.Config, domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
		prefix:         cfg.App.APIPrefix,
	}
}
