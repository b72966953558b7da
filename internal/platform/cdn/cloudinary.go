package cdn

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type UploadResult struct {
	URL      string
	PublicID string
	Width    int
	Height   int
}

type SignatureResult struct {
	Signature string
	Timestamp int64
	CloudName string
	APIKey    string
	Folder    string
}

// Store is the CDN surface the upload service needs. Backed by Cloudinary.
type Store interface {
	Upload(ctx context.Context, file io.Reader, folder string) (*UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
	SignUpload(folder string) (*SignatureResult, error)
}

type cloudinaryStore struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiKey    string
	apiSecret string
}

// NewCloudinaryStore returns nil when credentials are missing; callers treat
// a nil Store as "CDN not configured".
func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (Store, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, nil
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cdn.NewCloudinaryStore: %w", err)
	}
	cld.Config.URL.Secure = true
	return &cloudinaryStore{cld: cld, cloudName: cloudName, apiKey: apiKey, apiSecret: apiSecret}, nil
}

func (s *cloudinaryStore) Upload(ctx context.Context, file io.Reader, folder string) (*UploadResult, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       "calius/" + folder,
		ResourceType: "image",
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinaryStore.Upload: %w", err)
	}
	return &UploadResult{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
		Width:    resp.Width,
		Height:   resp.Height,
	}, nil
}

func (s *cloudinaryStore) Destroy(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:   publicID,
		Invalidate: api.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("cloudinaryStore.Destroy: %w", err)
	}
	return nil
}

// SignUpload produces the signature a browser needs for a direct signed
// upload. Only timestamp and folder participate in the signature, matching
// the parameters the admin frontend sends.
func (s *cloudinaryStore) SignUpload(folder string) (*SignatureResult, error) {
	timestamp := time.Now().Unix()
	params := url.Values{
		"timestamp": {strconv.FormatInt(timestamp, 10)},
		"folder":    {folder},
	}
	signature, err := api.SignParameters(params, s.apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinaryStore.SignUpload: %w", err)
	}
	return &SignatureResult{
		Signature: signature,
		Timestamp: timestamp,
		CloudName: s.cloudName,
		APIKey:    s.apiKey,
		Folder:    folder,
	}, nil
}
