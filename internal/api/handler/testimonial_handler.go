package handler

import (
	"net/http"
	"time"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"
	"github.com/kebo-sukses/calius-digital/internal/domain/repository"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TestimonialHandler struct {
	repo repository.TestimonialRepository
}

func NewTestimonialHandler(repo repository.TestimonialRepository) *TestimonialHandler {
	return &TestimonialHandler{repo: repo}
}

func (h *TestimonialHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/testimonials", h.List)
}

func (h *TestimonialHandler) RegisterEditorRoutes(r chi.Router) {
	r.Post("/admin/testimonials", h.Create)
	r.Put("/admin/testimonials/{id}", h.Update)
	r.Delete("/admin/testimonials/{id}", h.Delete)
}

func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, items)
}

func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var t model.Testimonial
	if err := decodeJSON(r, &t); err != nil {
		handleError(w, err)
		return
	}
	if t.Name == "" {
		common.RespondWithError(w, http.StatusBadRequest, "Testimonial name is required")
		return
	}
	t.ID = uuid.NewString()
	if t.Rating == 0 {
		t.Rating = 5
	}
	t.CreatedAt = time.Now().UTC()

	if err := h.repo.Create(r.Context(), &t); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true, ID: t.ID})
}

func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	var t model.Testimonial
	if err := decodeJSON(r, &t); err != nil {
		handleError(w, err)
		return
	}
	if err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), &t); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true})
}

func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true})
}
