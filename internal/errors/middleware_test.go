package errors_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Behyna/e24-payment-pipe/internal/api/contract"
	"github.com/Behyna/e24-payment-pipe/internal/constants"
	apperrors "github.com/Behyna/e24-payment-pipe/internal/errors"
	"github.com/Behyna/e24-payment-pipe/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "service error",
			err:            service.NewServiceError(constants.ErrCodeDuplicateTrackID, errors.New("dup")),
			expectedStatus: http.StatusConflict,
			expectedCode:   constants.ErrCodeDuplicateTrackID,
		},
		{
			name:           "gateway timeout",
			err:            service.NewServiceError(constants.ErrCodeGatewayTimeout, errors.New("deadline")),
			expectedStatus: http.StatusGatewayTimeout,
			expectedCode:   constants.ErrCodeGatewayTimeout,
		},
		{
			name:           "unknown service code",
			err:            service.NewServiceError("SOMETHING_ELSE", errors.New("boom")),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   constants.ErrCodeInternalError,
		},
		{
			name:           "fiber error",
			err:            fiber.ErrMethodNotAllowed,
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCode:   constants.ErrCodeInvalidRequestBody,
		},
		{
			name:           "plain error",
			err:            errors.New("unexpected"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   constants.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: apperrors.ErrorHandler(zap.NewNop())})
			app.Get("/", func(c *fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			var body contract.Response
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Equal(t, tt.expectedCode, body.Code)
			assert.False(t, body.Successful)
		})
	}
}
