package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"feastly.backend/internal/interfaces/http/handlers"
	"feastly.backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	m.Run()
}

type stubStorage struct {
	url string
	err error
	key string
}

func (s *stubStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	s.key = key
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func newUploadRouter(storage handlers.Storage) *gin.Engine {
	router := gin.New()
	router.POST("/uploads", handlers.NewUploadsHandler(storage).Upload)
	return router
}

func multipartBody(t *testing.T, fieldName, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadsHandlerRejectsMissingFile(t *testing.T) {
	router := newUploadRouter(&stubStorage{url: "https://bucket.s3.amazonaws.com/x"})

	req := httptest.NewRequest(http.MethodPost, "/uploads", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "file is required")
}

func TestUploadsHandlerReturnsURL(t *testing.T) {
	storage := &stubStorage{url: "https://bucket.s3.amazonaws.com/cover.png"}
	router := newUploadRouter(storage)

	body, contentType := multipartBody(t, "file", "cover.png", "image-bytes")
	req := httptest.NewRequest(http.MethodPost, "/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), storage.url)
	assert.Contains(t, storage.key, "cover.png")
}

func TestUploadsHandlerStorageFailure(t *testing.T) {
	router := newUploadRouter(&stubStorage{err: errors.New("bucket unavailable")})

	body, contentType := multipartBody(t, "file", "cover.png", "image-bytes")
	req := httptest.NewRequest(http.MethodPost, "/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "could not upload file")
}
