package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeEmptyCart, http.StatusBadRequest},
		{ErrCodeSyncInProgress, http.StatusConflict},
		{ErrCodeCloudNotConfigured, http.StatusConflict},
		{ErrCodeCloudUnavailable, http.StatusBadGateway},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeInternal, http.StatusInternalServerError},
		{"ERR_SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, GetHTTPStatus(tt.code), tt.code)
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeEmptyCart, NormalizeErrorCode("EMPTY_CART"))
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("NOT_FOUND"))
	assert.Equal(t, ErrCodeInvalidInput, NormalizeErrorCode("INVALID_CUSTOMER"))
	assert.Equal(t, "ERR_ALREADY_NEW", NormalizeErrorCode("ERR_ALREADY_NEW"))
}

func TestErrorResponseShape(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeEmptyCart, "Cart is empty", "req-1")
	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeEmptyCart, resp.Error.Code)
	assert.Equal(t, "req-1", resp.Error.RequestID)

	ok := NewSuccessResponse("data")
	assert.True(t, ok.Success)
	assert.Nil(t, ok.Error)
}
