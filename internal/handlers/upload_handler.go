package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	UploadDir string
}

func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{UploadDir: uploadDir}
}

// UploadFileHandler accepts a multipart image upload and returns the public
// URL the client should store on the wish. Only the URL is persisted; the
// file contents are never inspected beyond the content type.
func (h *UploadHandler) UploadFileHandler(w http.ResponseWriter, r *http.Request) {
	// Max size: 10MB
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "File too big or invalid format")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing file in request")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		respondError(w, http.StatusBadRequest, "Only JPEG and PNG images are allowed")
		return
	}

	ext := filepath.Ext(header.Filename)
	fileName := uuid.NewString() + ext
	savePath := filepath.Join(h.UploadDir, fileName)

	if err := os.MkdirAll(h.UploadDir, os.ModePerm); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create upload folder")
		return
	}

	out, err := os.Create(savePath)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save file")
		return
	}
	defer out.Close()
	if _, err := io.Copy(out, file); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to write file")
		return
	}

	fileURL := "/uploads/" + fileName
	logrus.WithFields(logrus.Fields{
		"file": fileName,
		"url":  fileURL,
	}).Info("image uploaded")

	respondJSON(w, http.StatusOK, map[string]string{"url": fileURL})
}
