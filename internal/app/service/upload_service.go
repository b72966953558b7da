package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/platform/cdn"
)

// MaxUploadSize caps direct image uploads at 10 MiB.
const MaxUploadSize = 10 << 20

var allowedUploadFolders = map[string]bool{
	"uploads":   true,
	"templates": true,
	"portfolio": true,
	"blog":      true,
	"users":     true,
	"settings":  true,
}

var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/webp":    true,
	"image/gif":     true,
	"image/svg+xml": true,
}

type UploadService struct {
	store cdn.Store
}

// NewUploadService accepts a nil store; every operation then reports the CDN
// as not configured.
func NewUploadService(store cdn.Store) *UploadService {
	return &UploadService{store: store}
}

func (s *UploadService) Upload(ctx context.Context, file io.Reader, size int64, contentType, folder string) (*cdn.UploadResult, error) {
	if s.store == nil {
		return nil, fmt.Errorf("image storage is not configured: %w", common.ErrMisconfigured)
	}
	if folder == "" {
		folder = "uploads"
	}
	if !allowedUploadFolders[folder] {
		return nil, fmt.Errorf("folder %q is not allowed: %w", folder, common.ErrValidation)
	}
	if !allowedImageTypes[strings.ToLower(contentType)] {
		return nil, fmt.Errorf("unsupported content type %q: %w", contentType, common.ErrValidation)
	}
	if size > MaxUploadSize {
		return nil, fmt.Errorf("file exceeds the %d byte limit: %w", MaxUploadSize, common.ErrValidation)
	}

	result, err := s.store.Upload(ctx, file, folder)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %v: %w", err, common.ErrUpstream)
	}
	return result, nil
}

func (s *UploadService) Delete(ctx context.Context, publicID string) error {
	if s.store == nil {
		return fmt.Errorf("image storage is not configured: %w", common.ErrMisconfigured)
	}
	if publicID == "" {
		return fmt.Errorf("public_id is required: %w", common.ErrValidation)
	}
	if err := s.store.Destroy(ctx, publicID); err != nil {
		return fmt.Errorf("delete failed: %v: %w", err, common.ErrUpstream)
	}
	return nil
}

// Signature issues the parameters a browser needs for a signed direct
// upload. The folder must sit under the same allowlist used for proxied
// uploads, prefixed with the site namespace.
func (s *UploadService) Signature(folder string) (*cdn.SignatureResult, error) {
	if s.store == nil {
		return nil, fmt.Errorf("image storage is not configured: %w", common.ErrMisconfigured)
	}
	if folder == "" {
		folder = "calius/uploads"
	}
	rest, ok := strings.CutPrefix(folder, "calius/")
	if !ok || !allowedUploadFolders[rest] {
		return nil, fmt.Errorf("folder %q is not allowed: %w", folder, common.ErrValidation)
	}
	sig, err := s.store.SignUpload(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to sign upload: %w", err)
	}
	return sig, nil
}
