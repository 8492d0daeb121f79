package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	AbortWithError(c, ErrRecipeNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, "Not found", resp.Error)
	assert.Equal(t, ErrCodeRecipeNotFound, resp.Code)
	assert.Empty(t, resp.Hint)
	assert.True(t, c.IsAborted())
}

func TestAbortWithErrorHint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	AbortWithErrorHint(c, ErrTooManyRequests, "Wait a moment.")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, "Easy there. Try again in a moment.", resp.Error)
	assert.Equal(t, ErrCodeTooManyRequests, resp.Code)
	assert.Equal(t, "Wait a moment.", resp.Hint)
}

func TestCustomErrorWithMessage(t *testing.T) {
	detailed := ErrInvalidRequest.WithMessage("people must be between 1 and 16")

	assert.Equal(t, "people must be between 1 and 16", detailed.Message)
	assert.Equal(t, ErrCodeInvalidRequest, detailed.Code)
	assert.Equal(t, http.StatusBadRequest, detailed.Status)
	// 原本的預定義錯誤不受影響
	assert.Equal(t, "Invalid input", ErrInvalidRequest.Message)
}

func TestIsTransientUpstream(t *testing.T) {
	transient := &UpstreamError{Provider: "openai", Status: 429, Transient: true, Err: errors.New("rate limited")}
	permanent := &UpstreamError{Provider: "openai", Status: 401, Transient: false, Err: errors.New("bad key")}

	assert.True(t, IsTransientUpstream(transient))
	assert.False(t, IsTransientUpstream(permanent))
	assert.False(t, IsTransientUpstream(errors.New("plain error")))
}
