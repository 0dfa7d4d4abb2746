package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Post("/users/register", h.register)
		r.Post("/users/login", h.login)
		r.Get("/users/logout", h.logout)

		r.Post("/products", h.addProduct)
		r.Get("/products", h.listProducts)

		r.Post("/raws", h.addRaw)
		r.Get("/raws", h.listRaws)
		r.Put("/raws", h.assignProduct)

		r.Post("/purchases", h.addPurchase)
		r.Get("/purchases", h.listPurchases)
	})

	return router
}
