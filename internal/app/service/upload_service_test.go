package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/kebo-sukses/calius-digital/internal/common"
	"github.com/kebo-sukses/calius-digital/internal/platform/cdn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCDNStore struct {
	uploadedFolder string
	destroyed      []string
	uploadErr      error
	destroyErr     error
}

func (s *fakeCDNStore) Upload(ctx context.Context, file io.Reader, folder string) (*cdn.UploadResult, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	s.uploadedFolder = folder
	return &cdn.UploadResult{URL: "https://res.cloudinary.com/demo/image.jpg", PublicID: "calius/" + folder + "/image"}, nil
}

func (s *fakeCDNStore) Destroy(ctx context.Context, publicID string) error {
	if s.destroyErr != nil {
		return s.destroyErr
	}
	s.destroyed = append(s.destroyed, publicID)
	return nil
}

func (s *fakeCDNStore) SignUpload(folder string) (*cdn.SignatureResult, error) {
	return &cdn.SignatureResult{Signature: "sig", Timestamp: 1700000000, Folder: folder}, nil
}

func TestUploadAcceptsAllowedImage(t *testing.T) {
	store := &fakeCDNStore{}
	svc := NewUploadService(store)

	result, err := svc.Upload(context.Background(), strings.NewReader("fake"), 4, "image/png", "templates")
	require.NoError(t, err)
	assert.Equal(t, "templates", store.uploadedFolder)
	assert.NotEmpty(t, result.URL)
}

func TestUploadDefaultsFolder(t *testing.T) {
	store := &fakeCDNStore{}
	svc := NewUploadService(store)

	_, err := svc.Upload(context.Background(), strings.NewReader("fake"), 4, "image/jpeg", "")
	require.NoError(t, err)
	assert.Equal(t, "uploads", store.uploadedFolder)
}

func TestUploadRejectsUnknownFolder(t *testing.T) {
	svc := NewUploadService(&fakeCDNStore{})

	_, err := svc.Upload(context.Background(), strings.NewReader("fake"), 4, "image/png", "../../etc")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestUploadRejectsNonImageContentType(t *testing.T) {
	svc := NewUploadService(&fakeCDNStore{})

	_, err := svc.Upload(context.Background(), strings.NewReader("fake"), 4, "application/pdf", "uploads")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc := NewUploadService(&fakeCDNStore{})

	_, err := svc.Upload(context.Background(), strings.NewReader("fake"), MaxUploadSize+1, "image/png", "uploads")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestUploadWithoutStoreReportsMisconfiguration(t *testing.T) {
	svc := NewUploadService(nil)

	_, err := svc.Upload(context.Background(), strings.NewReader("fake"), 4, "image/png", "uploads")
	assert.ErrorIs(t, err, common.ErrMisconfigured)

	err = svc.Delete(context.Background(), "calius/uploads/image")
	assert.ErrorIs(t, err, common.ErrMisconfigured)

	_, err = svc.Signature("calius/uploads")
	assert.ErrorIs(t, err, common.ErrMisconfigured)
}

func TestSignatureEnforcesNamespacedFolder(t *testing.T) {
	svc := NewUploadService(&fakeCDNStore{})

	sig, err := svc.Signature("calius/templates")
	require.NoError(t, err)
	assert.Equal(t, "calius/templates", sig.Folder)

	_, err = svc.Signature("templates")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.Signature("calius/secrets")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestUploadErrorKeepsProviderDetail(t *testing.T) {
	store := &fakeCDNStore{uploadErr: errors.New("cloudinary: Invalid Signature - timestamp expired")}
	svc := NewUploadService(store)

	_, err := svc.Upload(context.Background(), strings.NewReader("fake"), 4, "image/png", "uploads")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUpstream)
	assert.Contains(t, err.Error(), "timestamp expired")
}

func TestDeleteErrorKeepsProviderDetail(t *testing.T) {
	store := &fakeCDNStore{destroyErr: errors.New("cloudinary: resource not found")}
	svc := NewUploadService(store)

	err := svc.Delete(context.Background(), "calius/uploads/image")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUpstream)
	assert.Contains(t, err.Error(), "resource not found")
}

func TestDeleteRequiresPublicID(t *testing.T) {
	store := &fakeCDNStore{}
	svc := NewUploadService(store)

	err := svc.Delete(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrValidation)

	require.NoError(t, svc.Delete(context.Background(), "calius/uploads/image"))
	assert.Equal(t, []string{"calius/uploads/image"}, store.destroyed)
}
