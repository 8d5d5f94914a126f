package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Behyna/e24-payment-pipe/internal/metrics"
	"github.com/Behyna/e24-payment-pipe/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const mysqlDuplicateEntry = 1062

var (
	ErrPaymentInitNotFound  = errors.New("PAYMENT_INIT_NOT_FOUND")
	ErrPaymentInitDuplicate = errors.New("PAYMENT_INIT_DUPLICATE")
)

type PaymentInitRepository interface {
	Create(ctx context.Context, payment *model.PaymentInit) error
	Update(ctx context.Context, payment *model.PaymentInit) error
	GetByTrackID(ctx context.Context, trackID string) (*model.PaymentInit, error)
}

type PaymentInit struct {
	db      *gorm.DB
	metrics *metrics.Metrics
}

func NewPaymentInitRepository(db *gorm.DB, m *metrics.Metrics) PaymentInitRepository {
	return &PaymentInit{db: db, metrics: m}
}

func (r *PaymentInit) Create(ctx context.Context, payment *model.PaymentInit) error {
	start := time.Now()
	err := translateError(r.db.WithContext(ctx).Create(payment).Error)
	r.observe("create", start, err)

	return err
}

func (r *PaymentInit) Update(ctx context.Context, payment *model.PaymentInit) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Model(payment).Where("id = ?", payment.ID).Updates(payment).Error
	r.observe("update", start, err)

	return err
}

func (r *PaymentInit) GetByTrackID(ctx context.Context, trackID string) (*model.PaymentInit, error) {
	var payment model.PaymentInit

	start := time.Now()
	err := translateError(r.db.WithContext(ctx).Where("track_id = ?", trackID).First(&payment).Error)
	r.observe("get_by_track_id", start, err)

	if err != nil {
		return nil, err
	}

	return &payment, nil
}

func (r *PaymentInit) observe(operation string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}

	r.metrics.RecordDBQuery(operation, queryStatus(err), time.Since(start))
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return ErrPaymentInitDuplicate
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrPaymentInitDuplicate
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrPaymentInitNotFound
	default:
		return err
	}
}

func queryStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrPaymentInitNotFound):
		return "not_found"
	case errors.Is(err, ErrPaymentInitDuplicate):
		return "duplicate"
	default:
		return "error"
	}
}
