package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/auraflow/auraflow-be/internal/api/handlers"
	"github.com/auraflow/auraflow-be/internal/auth"
	"github.com/auraflow/auraflow-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	issuer *auth.TokenIssuer,
	userService services.UserServiceProvider,
	productService services.ProductServiceProvider,
	allowedOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, issuer)
	productHandler := handlers.NewProductHandler(productService)

	requireUser := issuer.Middleware(userService)

	r.Get("/", handlers.Welcome)

	r.Route("/api", func(r chi.Router) {
		r.Get("/healthz", handlers.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
			r.With(requireUser).Get("/me", authHandler.GetMe)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.With(requireUser).Post("/", productHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", productHandler.Get)
				r.With(requireUser).Put("/", productHandler.Update)
				r.With(requireUser).Delete("/", productHandler.Delete)
			})
		})
	})

	return r
}
