package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbill/internal/middleware"
	"gstbill/internal/service"
)

// StorageHandler serves profile asset uploads and presigned URL issuance.
type StorageHandler struct {
	storage service.StorageService
}

// NewStorageHandler creates a new StorageHandler.
func NewStorageHandler(storage service.StorageService) *StorageHandler {
	return &StorageHandler{storage: storage}
}

// Upload accepts a multipart file ("file") plus a "folder" field naming the
// asset kind (logos, stamps, signatures).
func (h *StorageHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "file field is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.storage.Upload(c.Request.Context(), middleware.CompanyID(c), service.UploadFileInput{
		Folder:      c.PostForm("folder"),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusCreated, result)
}

// SignURL returns a presigned read URL for a stored object key. The key comes
// from a JSON body {"key": ...} on POST or a ?key= query on GET.
func (h *StorageHandler) SignURL(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		var body struct {
			Key string `json:"key"`
		}
		if err := c.ShouldBindJSON(&body); err == nil {
			key = body.Key
		}
	}

	url, err := h.storage.SignURL(c.Request.Context(), key)
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{"url": url})
}
