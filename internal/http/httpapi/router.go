package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/http/handlers"
	"github.com/leonvanzyl/nano-banana-pro-prompt-generator/internal/middleware"
)

// NewRouter wires every route. Provider-backed endpoints sit behind a
// per-client rate limit since each call spends the user's Gemini quota.
func NewRouter(app *handlers.App, countryLookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.I18N("en", countryLookup),
		middleware.Logger(app.Logger),
		middleware.CORS(app.Config.AllowedOrigins),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/templates", func(r chi.Router) {
		r.Get("/", app.TemplatesList)
		r.Get("/{category}", app.TemplatesByCategory)
	})

	r.Get("/v1/gallery", app.GalleryList)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(app.Config.JWTSecret))

		r.Post("/v1/prompt/assemble", app.PromptAssemble)

		r.Route("/v1/generations", func(r chi.Router) {
			r.Get("/", app.GenerationsList)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RateLimit(10, time.Minute))
				r.Post("/", app.GenerationsCreate)
				r.Post("/{id}/refine", app.GenerationsRefine)
			})
			r.Get("/{id}", app.GenerationsGet)
			r.Delete("/{id}", app.GenerationsDelete)
			r.Get("/{id}/download", app.GenerationsDownload)
		})

		r.Put("/v1/images/{id}/visibility", app.ImagesSetVisibility)

		r.Route("/v1/avatars", func(r chi.Router) {
			r.Get("/", app.AvatarsList)
			r.Post("/", app.AvatarsCreate)
			r.Put("/{id}", app.AvatarsUpdate)
			r.Delete("/{id}", app.AvatarsDelete)
		})

		r.Route("/v1/profile/api-key", func(r chi.Router) {
			r.Get("/", app.APIKeyStatus)
			r.Put("/", app.APIKeySet)
			r.Delete("/", app.APIKeyDelete)
		})
	})

	if app.Files != nil {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(app.Files.BasePath())))
		r.Get("/static/*", fs.ServeHTTP)
	}

	return r
}
