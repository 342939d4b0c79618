// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/app"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/internal/utils"
	"github.com/Thomas-Kyaw/New-ProjectWildlife/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router with every route of the API.
//
// Public routes: liveness, registration, login, the upload proxy and the
// upload record endpoints. Profile, profile update and the admin route
// require a bearer token; the admin route also requires the admin role.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(h.withTraceID, h.withLogging)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusNotFound, app.MsgRouteNotFound, nil)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed, nil)
	})

	router.Get("/test", h.ping)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Post("/upload", h.upload)
		r.With(withGZip).Get("/data", h.listData)
		r.Post("/save-data", h.saveData)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/auth/profile", h.profile)
			r.Put("/user/update", h.updateProfile)
			r.With(h.requireRole(models.RoleAdmin)).Get("/admin", h.admin)
		})
	})

	return router
}

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: app.MsgServerIsRunning}, http.StatusOK)
}
