package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"
	"github.com/kebo-sukses/calius-digital/internal/domain/repository"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type BlogHandler struct {
	repo repository.BlogRepository
}

func NewBlogHandler(repo repository.BlogRepository) *BlogHandler {
	return &BlogHandler{repo: repo}
}

func (h *BlogHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/blog", h.List)
	r.Get("/blog/{slug}", h.GetBySlug)
}

func (h *BlogHandler) RegisterEditorRoutes(r chi.Router) {
	r.Post("/admin/blog", h.Create)
	r.Put("/admin/blog/{id}", h.Update)
	r.Delete("/admin/blog/{id}", h.Delete)
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			common.RespondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}
	posts, err := h.repo.List(r.Context(), r.URL.Query().Get("category"), limit)
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, posts)
}

func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.repo.FindBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, post)
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p model.BlogPost
	if err := decodeJSON(r, &p); err != nil {
		handleError(w, err)
		return
	}
	if p.TitleEN == "" && p.TitleID == "" {
		common.RespondWithError(w, http.StatusBadRequest, "Post title is required")
		return
	}
	p.ID = uuid.NewString()
	if p.Slug == "" {
		title := p.TitleEN
		if title == "" {
			title = p.TitleID
		}
		p.Slug = slug.Make(title)
	}
	if p.PublishedAt == "" {
		p.PublishedAt = time.Now().UTC().Format("2006-01-02")
	}
	p.CreatedAt = time.Now().UTC()

	if err := h.repo.Create(r.Context(), &p); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true, ID: p.ID})
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p model.BlogPost
	if err := decodeJSON(r, &p); err != nil {
		handleError(w, err)
		return
	}
	p.UpdatedAt = time.Now().UTC()
	if err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), &p); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true})
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true})
}
