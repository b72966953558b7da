package handler

import (
	"net/http"

	"github.com/kebo-sukses/calius-digital/internal/app/service"
	"github.com/kebo-sukses/calius-digital/internal/common"

	"github.com/go-chi/chi/v5"
)

type UploadHandler struct {
	uploads *service.UploadService
}

func NewUploadHandler(uploads *service.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

func (h *UploadHandler) RegisterEditorRoutes(r chi.Router) {
	r.Post("/upload", h.Upload)
	r.Get("/cloudinary/signature", h.Signature)
	// Cloudinary public ids contain slashes, so the delete route takes a
	// wildcard tail rather than a single segment.
	r.Delete("/cloudinary/*", h.Delete)
}

type uploadResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(service.MaxUploadSize); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "A file field named 'file' is required")
		return
	}
	defer file.Close()

	result, err := h.uploads.Upload(r.Context(), file, header.Size, header.Header.Get("Content-Type"), r.FormValue("folder"))
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, uploadResponse{
		Success:  true,
		URL:      result.URL,
		PublicID: result.PublicID,
		Width:    result.Width,
		Height:   result.Height,
	})
}

func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uploads.Delete(r.Context(), chi.URLParam(r, "*")); err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, mutationResponse{Success: true})
}

func (h *UploadHandler) Signature(w http.ResponseWriter, r *http.Request) {
	sig, err := h.uploads.Signature(r.URL.Query().Get("folder"))
	if err != nil {
		handleError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"signature":  sig.Signature,
		"timestamp":  sig.Timestamp,
		"cloud_name": sig.CloudName,
		"api_key":    sig.APIKey,
		"folder":     sig.Folder,
	})
}
