package v1

import (
	"time"

	"github.com/Behyna/e24-payment-pipe/internal/api/contract"
	"github.com/Behyna/e24-payment-pipe/internal/api/validator"
	"github.com/Behyna/e24-payment-pipe/internal/constants"
	"github.com/Behyna/e24-payment-pipe/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Handler struct {
	logger     *zap.Logger
	service    service.PaymentInitService
	XValidator validator.IXValidator
}

func NewHandler(logger *zap.Logger, service service.PaymentInitService, XValidator validator.IXValidator) *Handler {
	return &Handler{
		logger:     logger,
		service:    service,
		XValidator: XValidator,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) InitializePayment(c *fiber.Ctx) error {
	start := time.Now()

	var request InitializePaymentRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Warn("Invalid payment init request",
			zap.String("code", responseError.Code),
			zap.String("message", responseError.Message),
			zap.String("trackID", request.TrackID))
		return c.JSON(responseError)
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(contract.Response{
			Code:    constants.ErrCodeValidationFailed,
			Message: err.Error(),
		})
	}

	cmd := service.InitializePaymentCommand{
		TrackID:  request.TrackID,
		Action:   request.Action,
		Amount:   amount,
		Currency: request.Currency,
		Language: request.Language,
		UDF:      [5]string{request.UDF1, request.UDF2, request.UDF3, request.UDF4, request.UDF5},
	}

	resp, err := h.service.Initialize(c.UserContext(), cmd)
	if err != nil {
		h.logger.Error("Failed to initialize payment",
			zap.Error(err),
			zap.String("trackID", request.TrackID),
			zap.String("action", request.Action))

		return err
	}

	h.logger.Info("Payment init request served",
		zap.String("trackID", resp.TrackID),
		zap.String("paymentID", resp.PaymentID),
		zap.Duration("duration", time.Since(start)))

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    constants.MsgPaymentInitialized,
		TrackID:    resp.TrackID,
		Result:     resp,
	})
}

func (h *Handler) GetPayment(c *fiber.Ctx) error {
	trackID := c.Params("track_id")

	payment, err := h.service.GetPayment(c.UserContext(), service.GetPaymentQuery{TrackID: trackID})
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    constants.MsgPaymentRetrieved,
		TrackID:    trackID,
		Result:     payment,
	})
}
