package response_test

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"scaffold/shared/constant"
	"scaffold/shared/failure"
	"scaffold/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON_WritesBarePayload(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, []map[string]int{{"id": 1}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
	assert.JSONEq(t, `[{"id":1}]`, rec.Body.String())
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithMessage(rec, http.StatusOK, "Item deleted successfully")

	assert.JSONEq(t, `{"message":"Item deleted successfully"}`, rec.Body.String())
}

func TestWithStatus(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithStatus(rec, http.StatusServiceUnavailable, "unhealthy")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unhealthy"}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "not found",
			err:          failure.NotFound("Todo not found"),
			expectedCode: http.StatusNotFound,
			expectedBody: `{"detail":"Todo not found"}`,
		},
		{
			name:         "wrapped validation failure",
			err:          fmt.Errorf("decode: %w", failure.UnprocessableEntity("price is required")),
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"price is required"}`,
		},
		{
			name:         "plain error",
			err:          errors.New("boom"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"detail":"boom"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"detail":"`+constant.ResponseErrorRequestLimitExceeded+`"}`, rec.Body.String())
}

func TestWithPreparingShutdown(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithPreparingShutdown(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestWithJSON_UnencodablePayload(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, math.Inf(1))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Body.String())
}
