package api

import (
	"net/http"
	"time"

	"github.com/kebo-sukses/calius-digital/internal/api/handler"
	apimiddleware "github.com/kebo-sukses/calius-digital/internal/api/middleware"
	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/common/security"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"
	"github.com/kebo-sukses/calius-digital/internal/domain/repository"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers bundles every route registrar the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Services     *handler.ServiceHandler
	Templates    *handler.TemplateHandler
	Portfolio    *handler.PortfolioHandler
	Blog         *handler.BlogHandler
	Testimonials *handler.TestimonialHandler
	Pricing      *handler.PricingHandler
	Contacts     *handler.ContactHandler
	Settings     *handler.SettingsHandler
	Stats        *handler.StatsHandler
	Payment      *handler.PaymentHandler
	Webhook      *handler.WebhookHandler
	Upload       *handler.UploadHandler
	Export       *handler.ExportHandler
	Sitemap      *handler.SitemapHandler
}

func NewRouter(tm *security.TokenManager, userRepo repository.UserRepository, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		common.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	r.Get("/sitemap.xml", h.Sitemap.Serve)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			common.RespondWithJSON(w, http.StatusOK, map[string]string{
				"name":    "Calius Digital API",
				"version": "2.0",
			})
		})

		// Public surface: site content, checkout, and the gateway webhook.
		r.Group(func(r chi.Router) {
			h.Auth.RegisterPublicRoutes(r)
			h.Services.RegisterPublicRoutes(r)
			h.Templates.RegisterPublicRoutes(r)
			h.Portfolio.RegisterPublicRoutes(r)
			h.Blog.RegisterPublicRoutes(r)
			h.Testimonials.RegisterPublicRoutes(r)
			h.Pricing.RegisterPublicRoutes(r)
			h.Contacts.RegisterPublicRoutes(r)
			h.Settings.RegisterPublicRoutes(r)
			h.Payment.RegisterPublicRoutes(r)
			h.Webhook.RegisterPublicRoutes(r)
		})

		// Admin panel: every route below requires a valid token bound to a
		// live, active account.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tm.Auth()))
			r.Use(apimiddleware.Authenticator(userRepo))

			h.Auth.RegisterAuthedRoutes(r)
			h.Stats.RegisterAuthedRoutes(r)

			r.Group(func(r chi.Router) {
				r.Use(apimiddleware.RequireRole(model.RoleAdmin, model.RoleEditor))
				h.Services.RegisterEditorRoutes(r)
				h.Templates.RegisterEditorRoutes(r)
				h.Portfolio.RegisterEditorRoutes(r)
				h.Blog.RegisterEditorRoutes(r)
				h.Testimonials.RegisterEditorRoutes(r)
				h.Contacts.RegisterEditorRoutes(r)
				h.Payment.RegisterEditorRoutes(r)
				h.Upload.RegisterEditorRoutes(r)
			})

			r.Group(func(r chi.Router) {
				r.Use(apimiddleware.RequireRole(model.RoleAdmin))
				h.Auth.RegisterAdminRoutes(r)
				h.Services.RegisterAdminRoutes(r)
				h.Pricing.RegisterAdminRoutes(r)
				h.Settings.RegisterAdminRoutes(r)
				h.Export.RegisterAdminRoutes(r)
			})
		})
	})

	return r
}
