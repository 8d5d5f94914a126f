package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentInitState string

const (
	PaymentInitStateCreated     PaymentInitState = "CREATED"
	PaymentInitStateInitialized PaymentInitState = "INITIALIZED"
	PaymentInitStateFailed      PaymentInitState = "FAILED"
)

type PaymentInit struct {
	ID          int64            `gorm:"primaryKey;autoIncrement;<-:create"`
	TrackID     string           `gorm:"type:varchar(255);uniqueIndex;not null;<-:create"`
	Action      int              `gorm:"not null;<-:create"`
	Amount      decimal.Decimal  `gorm:"type:decimal(15,2);not null;<-:create"`
	Currency    int              `gorm:"not null;<-:create"`
	Language    string           `gorm:"type:char(3);not null;<-:create"`
	PaymentID   *string          `gorm:"type:varchar(255);null"`
	PaymentPage *string          `gorm:"type:varchar(1024);null"`
	State       PaymentInitState `gorm:"type:enum('CREATED','INITIALIZED','FAILED');not null"`
	LastError   *string          `gorm:"type:text;null"`
	CreatedAt   time.Time        `gorm:"type:timestamp;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time        `gorm:"type:timestamp;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP"`
}
