package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Behyna/e24-payment-pipe/internal/config"
	"github.com/Behyna/e24-payment-pipe/internal/constants"
	"github.com/Behyna/e24-payment-pipe/internal/metrics"
	"github.com/Behyna/e24-payment-pipe/internal/model"
	"github.com/Behyna/e24-payment-pipe/internal/repository"
	"github.com/Behyna/e24-payment-pipe/pkg/paymentpipe"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	outcomeSuccess     = "success"
	outcomeBadResponse = "bad_response"
	outcomeTimeout     = "timeout"
	outcomeTransport   = "transport_error"
	outcomeInvalid     = "invalid"
	outcomeError       = "error"
)

type PaymentInitService interface {
	Initialize(ctx context.Context, cmd InitializePaymentCommand) (InitializePaymentResponse, error)
	GetPayment(ctx context.Context, query GetPaymentQuery) (Payment, error)
}

type PaymentInit struct {
	pipe        paymentpipe.PaymentPipe
	repository  repository.PaymentInitRepository
	merchant    config.Merchant
	responseURL *url.URL
	errorURL    *url.URL
	timeout     time.Duration
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

func NewPaymentInitService(pipe paymentpipe.PaymentPipe, repo repository.PaymentInitRepository,
	cfg *config.Config, m *metrics.Metrics, logger *zap.Logger,
) (PaymentInitService, error) {
	responseURL, err := parseOptionalURL(cfg.Merchant.ResponseURL)
	if err != nil {
		return nil, fmt.Errorf("merchant response url: %w", err)
	}

	errorURL, err := parseOptionalURL(cfg.Merchant.ErrorURL)
	if err != nil {
		return nil, fmt.Errorf("merchant error url: %w", err)
	}

	return &PaymentInit{
		pipe:        pipe,
		repository:  repo,
		merchant:    cfg.Merchant,
		responseURL: responseURL,
		errorURL:    errorURL,
		timeout:     cfg.Gateway.Timeout,
		metrics:     m,
		logger:      logger,
	}, nil
}

func (p *PaymentInit) Initialize(ctx context.Context, cmd InitializePaymentCommand) (InitializePaymentResponse, error) {
	trackID := cmd.TrackID
	if trackID == "" {
		trackID = uuid.NewString()
	}

	msg, err := p.buildMessage(trackID, cmd)
	if err != nil {
		p.logger.Warn("Invalid payment init request",
			zap.Error(err),
			zap.String("trackID", trackID),
			zap.String("action", cmd.Action))
		p.metrics.RecordPaymentInit("unknown", outcomeInvalid)

		return InitializePaymentResponse{}, NewServiceError(constants.ErrCodeValidationFailed, err)
	}

	action := msg.Action().String()

	record := &model.PaymentInit{
		TrackID:  trackID,
		Action:   int(msg.Action()),
		Amount:   msg.Amount(),
		Currency: msg.Currency(),
		Language: msg.Language().String(),
		State:    model.PaymentInitStateCreated,
	}

	if err := p.repository.Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrPaymentInitDuplicate) {
			p.logger.Warn("Duplicate track id", zap.String("trackID", trackID))
			return InitializePaymentResponse{}, NewServiceError(constants.ErrCodeDuplicateTrackID, err)
		}

		p.logger.Error("Failed to store payment init", zap.Error(err), zap.String("trackID", trackID))
		return InitializePaymentResponse{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	start := time.Now()
	details, err := p.pipe.Initialize(ctx, msg, p.timeout)
	duration := time.Since(start)

	if err != nil {
		code, outcome := classifyGatewayError(err)
		p.metrics.RecordGatewayRequest(outcome, duration)
		p.metrics.RecordPaymentInit(action, outcome)
		p.logGatewayError(err, trackID, duration)

		lastError := err.Error()
		record.State = model.PaymentInitStateFailed
		record.LastError = &lastError
		p.update(ctx, record)

		return InitializePaymentResponse{}, NewServiceError(code, err)
	}

	p.metrics.RecordGatewayRequest(outcomeSuccess, duration)
	p.metrics.RecordPaymentInit(action, outcomeSuccess)

	record.State = model.PaymentInitStateInitialized
	record.PaymentID = &details.PaymentID
	record.PaymentPage = &details.PaymentPage
	p.update(ctx, record)

	p.logger.Info("Payment initialized successfully",
		zap.String("trackID", trackID),
		zap.String("paymentID", details.PaymentID),
		zap.String("action", action),
		zap.Duration("duration", duration))

	return InitializePaymentResponse{
		TrackID:     trackID,
		PaymentID:   details.PaymentID,
		PaymentPage: details.PaymentPage,
	}, nil
}

func (p *PaymentInit) GetPayment(ctx context.Context, query GetPaymentQuery) (Payment, error) {
	record, err := p.repository.GetByTrackID(ctx, query.TrackID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentInitNotFound) {
			return Payment{}, NewServiceError(constants.ErrCodePaymentNotFound, err)
		}

		p.logger.Error("Failed to load payment init", zap.Error(err), zap.String("trackID", query.TrackID))
		return Payment{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	payment := Payment{
		TrackID:   record.TrackID,
		Action:    record.Action,
		Amount:    record.Amount.StringFixed(2),
		Currency:  record.Currency,
		Language:  record.Language,
		State:     string(record.State),
		CreatedAt: record.CreatedAt,
	}

	if record.PaymentID != nil {
		payment.PaymentID = *record.PaymentID
	}
	if record.PaymentPage != nil {
		payment.PaymentPage = *record.PaymentPage
	}
	if record.LastError != nil {
		payment.LastError = *record.LastError
	}

	return payment, nil
}

func (p *PaymentInit) buildMessage(trackID string, cmd InitializePaymentCommand) (*paymentpipe.PaymentInitMessage, error) {
	action, err := paymentpipe.ParseRequiredAction(cmd.Action)
	if err != nil {
		return nil, err
	}

	languageName := cmd.Language
	if languageName == "" {
		languageName = p.merchant.Language
	}

	language, err := paymentpipe.ParseLanguage(languageName)
	if err != nil {
		return nil, err
	}

	currency := cmd.Currency
	if currency == 0 {
		currency = p.merchant.Currency
	}
	if currency == 0 {
		currency = paymentpipe.DefaultCurrency
	}

	opts := []paymentpipe.MessageOption{paymentpipe.WithCurrency(currency)}
	for i, value := range cmd.UDF {
		opts = append(opts, paymentpipe.WithUDF(i+1, value))
	}

	return paymentpipe.NewPaymentInitMessage(
		p.merchant.ID,
		p.merchant.Password,
		action,
		cmd.Amount,
		language,
		p.responseURL,
		p.errorURL,
		trackID,
		opts...,
	)
}

func (p *PaymentInit) update(ctx context.Context, record *model.PaymentInit) {
	if err := p.repository.Update(ctx, record); err != nil {
		p.logger.Error("Failed to update payment init",
			zap.Error(err),
			zap.String("trackID", record.TrackID),
			zap.String("state", string(record.State)))
	}
}

func (p *PaymentInit) logGatewayError(err error, trackID string, duration time.Duration) {
	var badResp *paymentpipe.BadResponseError
	if errors.As(err, &badResp) {
		p.logger.Error("Payment gateway rejected payment init",
			zap.String("trackID", trackID),
			zap.String("response", badResp.Response),
			zap.String("attemptedURL", badResp.AttemptedURL),
			zap.String("attemptedParams", redactParams(badResp.AttemptedParams)),
			zap.Duration("duration", duration))
		return
	}

	var transportErr *paymentpipe.TransportError
	if errors.As(err, &transportErr) {
		p.logger.Error("Payment gateway unreachable",
			zap.Error(transportErr.Err),
			zap.String("trackID", trackID),
			zap.String("attemptedURL", transportErr.AttemptedURL),
			zap.Int("statusCode", transportErr.StatusCode),
			zap.Duration("duration", duration))
		return
	}

	p.logger.Error("Payment init failed", zap.Error(err), zap.String("trackID", trackID))
}

func classifyGatewayError(err error) (code string, outcome string) {
	switch {
	case errors.Is(err, paymentpipe.ErrBadResponse):
		return constants.ErrCodeGatewayRejected, outcomeBadResponse
	case errors.Is(err, context.DeadlineExceeded):
		return constants.ErrCodeGatewayTimeout, outcomeTimeout
	case errors.Is(err, paymentpipe.ErrTransport):
		return constants.ErrCodeGatewayUnavailable, outcomeTransport
	default:
		return constants.ErrCodeInternalError, outcomeError
	}
}

// redactParams masks the terminal password in an encoded form body.
func redactParams(params string) string {
	pairs := strings.Split(params, "&")
	for i, pair := range pairs {
		if strings.HasPrefix(pair, "password=") {
			pairs[i] = "password=***"
		}
	}

	return strings.Join(pairs, "&")
}

func parseOptionalURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}

	if !u.IsAbs() {
		return nil, fmt.Errorf("%w: %q is not absolute", paymentpipe.ErrInvalidURL, raw)
	}

	return u, nil
}
