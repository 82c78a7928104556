package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletBalance struct {
	ID        int64           `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	MemberID  string          `gorm:"column:member_id;type:varchar(64);not null"`
	Balance   decimal.Decimal `gorm:"column:balance;type:decimal(20,2);not null"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (WalletBalance) TableName() string {
	return "wallet_balance"
}
