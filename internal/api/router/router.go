package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/nikolayk812/pharmacy/internal/api"
	m "github.com/nikolayk812/pharmacy/internal/api/middleware"
	"github.com/nikolayk812/pharmacy/internal/port"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, auth port.AuthService, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(m.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(m.Logger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", server.AuthHandler.Register)
		r.Post("/login", server.AuthHandler.Login)

		r.Get("/products", server.ProductHandler.List)
		r.Get("/products/{id}", server.ProductHandler.Get)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(m.Auth(auth))

			r.Post("/logout", server.AuthHandler.Logout)
			r.Get("/user", server.AuthHandler.Me)
			r.Post("/products", server.ProductHandler.Create)
			r.Get("/orders", server.OrderHandler.List)
			r.Post("/orders", server.OrderHandler.Create)
		})
	})

	return r
}
