package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/config"
	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type fakeObjectStorage struct {
	uploaded []port.UploadInput
}

func (f *fakeObjectStorage) Upload(ctx context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	f.uploaded = append(f.uploaded, input)
	return &port.UploadOutput{Location: "https://bucket.example/" + input.Key, ETag: "etag"}, nil
}

func (f *fakeObjectStorage) Delete(ctx context.Context, bucket, key string) error { return nil }

func (f *fakeObjectStorage) GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error) {
	return "https://bucket.example/" + key + "?signed", nil
}

func newStorageService() (StorageService, *fakeObjectStorage) {
	storage := &fakeObjectStorage{}
	cfg := config.S3Config{Bucket: "uploads", MaxFileSizeMB: 5, PresignExpiry: 3600}
	return NewStorageService(storage, cfg), storage
}

func TestUploadAcceptsPNGLogo(t *testing.T) {
	svc, storage := newStorageService()

	result, err := svc.Upload(context.Background(), uuid.New(), UploadFileInput{
		Folder:      "logos",
		Filename:    "logo.png",
		ContentType: "image/png",
		Size:        1024,
		Body:        strings.NewReader("not-really-a-png"),
	})
	require.NoError(t, err)
	require.Len(t, storage.uploaded, 1)
	assert.True(t, strings.HasPrefix(result.Key, "logos/"))
	assert.True(t, strings.HasSuffix(result.Key, ".png"))
	assert.Equal(t, "image/png", storage.uploaded[0].ContentType)
	assert.NotEmpty(t, result.URL)
}

func TestUploadRejectsUnknownFolder(t *testing.T) {
	svc, _ := newStorageService()

	_, err := svc.Upload(context.Background(), uuid.New(), UploadFileInput{
		Folder:   "documents",
		Filename: "logo.png",
		Size:     1024,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidUploadFolder)
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	svc, _ := newStorageService()

	_, err := svc.Upload(context.Background(), uuid.New(), UploadFileInput{
		Folder:   "stamps",
		Filename: "stamp.gif",
		Size:     1024,
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestUploadRejectsMismatchedContentType(t *testing.T) {
	svc, _ := newStorageService()

	_, err := svc.Upload(context.Background(), uuid.New(), UploadFileInput{
		Folder:      "signatures",
		Filename:    "sig.png",
		ContentType: "application/pdf",
		Size:        1024,
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc, _ := newStorageService()

	_, err := svc.Upload(context.Background(), uuid.New(), UploadFileInput{
		Folder:      "logos",
		Filename:    "logo.jpg",
		ContentType: "image/jpeg",
		Size:        6 * 1024 * 1024,
	})
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestSignURLRequiresKey(t *testing.T) {
	svc, _ := newStorageService()

	_, err := svc.SignURL(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
