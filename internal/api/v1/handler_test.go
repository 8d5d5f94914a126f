package v1_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Behyna/e24-payment-pipe/internal/api/contract"
	v1 "github.com/Behyna/e24-payment-pipe/internal/api/v1"
	"github.com/Behyna/e24-payment-pipe/internal/api/validator"
	"github.com/Behyna/e24-payment-pipe/internal/constants"
	apperrors "github.com/Behyna/e24-payment-pipe/internal/errors"
	"github.com/Behyna/e24-payment-pipe/internal/mocks"
	"github.com/Behyna/e24-payment-pipe/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type handlerFixture struct {
	app     *fiber.App
	service *mocks.PaymentInitService
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	logger := zap.NewNop()
	svc := &mocks.PaymentInitService{}

	xValidator, err := validator.NewXValidator(validator.NewValidate(), nil)
	require.NoError(t, err)

	handler := v1.NewHandler(logger, svc, xValidator)

	app := fiber.New(fiber.Config{ErrorHandler: apperrors.ErrorHandler(logger)})
	app.Get("/ping", handler.Pong)
	app.Post("/api/v1/payments/init", handler.InitializePayment)
	app.Get("/api/v1/payments/:track_id", handler.GetPayment)

	return &handlerFixture{app: app, service: svc}
}

func (f *handlerFixture) do(t *testing.T, req *http.Request) (int, contract.Response) {
	t.Helper()

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out contract.Response
	require.NoError(t, json.Unmarshal(body, &out))

	return resp.StatusCode, out
}

func postInit(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/init", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandler_Pong(t *testing.T) {
	f := newHandlerFixture(t)

	resp, err := f.app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestHandler_InitializePayment(t *testing.T) {
	t.Run("successful initialization", func(t *testing.T) {
		f := newHandlerFixture(t)

		expected := service.InitializePaymentCommand{
			TrackID:  "order-1",
			Action:   "purchase",
			Amount:   decimal.RequireFromString("5.30"),
			Currency: 978,
			Language: "ITA",
			UDF:      [5]string{"SKU#1", "", "", "", ""},
		}
		cmdMatcher := mock.MatchedBy(func(cmd service.InitializePaymentCommand) bool {
			return cmd.TrackID == expected.TrackID &&
				cmd.Action == expected.Action &&
				cmd.Amount.Equal(expected.Amount) &&
				cmd.Currency == expected.Currency &&
				cmd.Language == expected.Language &&
				cmd.UDF == expected.UDF
		})

		f.service.On("Initialize", mock.Anything, cmdMatcher).Return(service.InitializePaymentResponse{
			TrackID:     "order-1",
			PaymentID:   "PID123",
			PaymentPage: "http:gateway.example.com/page?PaymentID=PID123",
		}, nil)

		status, resp := f.do(t, postInit(`{"track_id":"order-1","action":"purchase","amount":"5.30",`+
			`"currency":978,"language":"ITA","udf1":"SKU#1"}`))

		assert.Equal(t, http.StatusOK, status)
		assert.True(t, resp.Successful)
		assert.Equal(t, "success", resp.Code)
		assert.Equal(t, constants.MsgPaymentInitialized, resp.Message)
		assert.Equal(t, "order-1", resp.TrackID)

		result, ok := resp.Result.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "PID123", result["payment_id"])
		f.service.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newHandlerFixture(t)

		status, resp := f.do(t, postInit(`{"action":`))

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, constants.ErrCodeInvalidRequestBody, resp.Code)
		f.service.AssertNotCalled(t, "Initialize", mock.Anything, mock.Anything)
	})

	t.Run("validation failure", func(t *testing.T) {
		f := newHandlerFixture(t)

		status, resp := f.do(t, postInit(`{"action":"refund","amount":"5.301"}`))

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, constants.ErrCodeValidationFailed, resp.Code)
		assert.Contains(t, resp.Message, "amount")
		f.service.AssertNotCalled(t, "Initialize", mock.Anything, mock.Anything)
	})

	t.Run("unknown action", func(t *testing.T) {
		f := newHandlerFixture(t)

		status, resp := f.do(t, postInit(`{"action":"teleport","amount":"1"}`))

		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Contains(t, resp.Message, "action")
	})

	t.Run("gateway rejection mapped by error handler", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.service.On("Initialize", mock.Anything, mock.Anything).
			Return(service.InitializePaymentResponse{},
				service.NewServiceError(constants.ErrCodeGatewayRejected, errors.New("!ERROR!")))

		status, resp := f.do(t, postInit(`{"action":"1","amount":"10"}`))

		assert.Equal(t, http.StatusBadGateway, status)
		assert.False(t, resp.Successful)
		assert.Equal(t, constants.ErrCodeGatewayRejected, resp.Code)
		assert.Equal(t, constants.ErrMsgGatewayRejected, resp.Message)
	})
}

func TestHandler_GetPayment(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.service.On("GetPayment", mock.Anything, service.GetPaymentQuery{TrackID: "order-1"}).
			Return(service.Payment{TrackID: "order-1", Amount: "5.30", State: "INITIALIZED"}, nil)

		status, resp := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/payments/order-1", nil))

		assert.Equal(t, http.StatusOK, status)
		assert.True(t, resp.Successful)
		assert.Equal(t, constants.MsgPaymentRetrieved, resp.Message)

		result, ok := resp.Result.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "INITIALIZED", result["state"])
		f.service.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.service.On("GetPayment", mock.Anything, service.GetPaymentQuery{TrackID: "missing"}).
			Return(service.Payment{}, service.NewServiceError(constants.ErrCodePaymentNotFound, errors.New("missing")))

		status, resp := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/payments/missing", nil))

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, constants.ErrCodePaymentNotFound, resp.Code)
	})
}
