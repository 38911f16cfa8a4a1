package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"geekstore/internal/delivery/api/middleware"
	"geekstore/internal/delivery/api/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope[T any] struct {
	Data  T `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

// newJSONContext builds a context for a JSON request. A non-zero userID marks it authenticated.
func newJSONContext(t *testing.T, method, target string, body any, userID uint64) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			data, err := json.Marshal(body)
			require.NoError(t, err)
			raw = string(data)
		}
		reader = bytes.NewBufferString(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := newEcho().NewContext(req, rec)
	if userID != 0 {
		c.Set(middleware.ContextKeyUserID, userID)
	}

	return c, rec
}

type formFile struct {
	field    string
	filename string
	content  []byte
}

// newMultipartContext builds an authenticated multipart request.
func newMultipartContext(t *testing.T, target string, values map[string]string, files []formFile, userID uint64) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range values {
		require.NoError(t, writer.WriteField(k, v))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := newEcho().NewContext(req, rec)
	if userID != 0 {
		c.Set(middleware.ContextKeyUserID, userID)
	}

	return c, rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var out envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func ptr[T any](v T) *T {
	return &v
}
