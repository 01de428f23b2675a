package controllers

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/htoohtoo/storefront/app/catalog"
	"github.com/htoohtoo/storefront/pkg/logger"
	"github.com/htoohtoo/storefront/pkg/response"
	"github.com/htoohtoo/storefront/pkg/storage"
)

// maxUploadBytes caps product image uploads at 5 MB.
const maxUploadBytes = 5 << 20

// MediaController serves stored files and takes product image uploads onto
// the configured disk (local or S3).
type MediaController struct{}

func NewMediaController() *MediaController { return &MediaController{} }

// Show streams a stored file. Content type comes from the extension.
func (c *MediaController) Show(w http.ResponseWriter, r *http.Request) {
	filePath := chi.URLParam(r, "*")
	if filePath == "" {
		response.NotFound(w)
		return
	}

	disk, err := storage.Default()
	if err != nil {
		logger.Error("media: disk unavailable", "error", err)
		response.Error(w, http.StatusInternalServerError, "storage unavailable")
		return
	}

	data, err := disk.Get(filePath)
	if err != nil {
		response.NotFound(w)
		return
	}

	if ct := mime.TypeByExtension(path.Ext(filePath)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(data)
}

// UploadProductImage stores an image for a catalog product and returns its
// public URL. Multipart field name: image.
func (c *MediaController) UploadProductImage(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if _, ok := catalog.Find(productID); !ok {
		response.NotFound(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(path.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		response.Error(w, http.StatusUnprocessableEntity, "unsupported image type")
		return
	}

	disk, err := storage.Default()
	if err != nil {
		logger.Error("media: disk unavailable", "error", err)
		response.Error(w, http.StatusInternalServerError, "storage unavailable")
		return
	}

	key := fmt.Sprintf("products/%s%s", productID, ext)
	if err := disk.Put(key, io.LimitReader(file, maxUploadBytes)); err != nil {
		logger.Error("media: upload failed", "key", key, "error", err)
		response.Error(w, http.StatusInternalServerError, "could not store image")
		return
	}

	response.Created(w, map[string]string{
		"path": key,
		"url":  disk.URL(key),
	})
}
