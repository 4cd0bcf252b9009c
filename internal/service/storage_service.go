package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"gstbill/internal/config"
	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// UploadFileInput carries one uploaded profile asset.
type UploadFileInput struct {
	Folder      string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadFileResult is returned after a successful upload.
type UploadFileResult struct {
	Key      string `json:"key"`
	Location string `json:"location"`
	URL      string `json:"url"`
}

// StorageService handles profile asset uploads (logos, stamps, signatures)
// and presigned read access to stored objects.
type StorageService interface {
	Upload(ctx context.Context, companyID uuid.UUID, input UploadFileInput) (*UploadFileResult, error)
	SignURL(ctx context.Context, key string) (string, error)
}

type storageService struct {
	storage port.ObjectStorage
	cfg     config.S3Config
}

// NewStorageService creates a new StorageService.
func NewStorageService(storage port.ObjectStorage, cfg config.S3Config) StorageService {
	return &storageService{storage: storage, cfg: cfg}
}

func (s *storageService) Upload(ctx context.Context, companyID uuid.UUID, input UploadFileInput) (*UploadFileResult, error) {
	folder := strings.ToLower(strings.TrimSpace(input.Folder))
	if !domain.UploadFolders[folder] {
		return nil, domain.ErrInvalidUploadFolder
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	if ct, ok := domain.AllowedContentTypes[input.ContentType]; ok {
		fileType = ct
	} else if input.ContentType != "" {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	key := fmt.Sprintf("%s/%s/%s.%s", folder, companyID, uuid.New(), fileType)
	out, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        input.Body,
		ContentType: domain.AllowedFileTypes[fileType],
		Size:        input.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("storageService.Upload: %w", domain.ErrUploadFailed)
	}

	url, err := s.storage.GetPresignedURL(ctx, s.cfg.Bucket, key, s.cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("storageService.Upload: presign: %w", err)
	}

	return &UploadFileResult{Key: key, Location: out.Location, URL: url}, nil
}

func (s *storageService) SignURL(ctx context.Context, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", domain.ErrNotFound
	}
	url, err := s.storage.GetPresignedURL(ctx, s.cfg.Bucket, key, s.cfg.PresignExpiry)
	if err != nil {
		return "", fmt.Errorf("storageService.SignURL: %w", err)
	}
	return url, nil
}
