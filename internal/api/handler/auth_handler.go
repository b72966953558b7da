package handler

import (
	"net/http"

	"github.com/kebo-sukses/calius-digital/internal/api/middleware"
	"github.com/kebo-sukses/calius-digital/internal/app/service"
	"github.com/kebo-sukses/calius-digital/internal/common"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/auth/login", h.Login)
	r.Post("/auth/init-admin", h.InitAdmin)
}

func (h *AuthHandler) RegisterAuthedRoutes(r chi.Router) {
	r.Get("/auth/me", h.Me)
}

func (h *AuthHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/auth/register", h.Register)
	r.Get("/admin/users", h.ListUsers)
	r.Put("/admin/users/{id}", h.UpdateUser)
	r.Delete("/admin/users/{id}", h.DeleteUser)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, err)
		return
	}
	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) InitAdmin(w http.ResponseWriter, r *http.Request) {
	result, err := h.authService.InitAdmin(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, result)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, err)
		return
	}
	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true, ID: user.ID})
}

func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, users)
}

func (h *AuthHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req service.UserUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, err)
		return
	}
	if err := h.authService.UpdateUser(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true})
}

func (h *AuthHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	if err := h.authService.DeleteUser(r.Context(), actor.ID, chi.URLParam(r, "id")); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true})
}
