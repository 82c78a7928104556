package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type SendMoneyHistory struct {
	ID             int64           `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	MemberID       string          `gorm:"column:member_id;type:varchar(64);not null"`
	BeneficiaryID  string          `gorm:"column:beneficiary_id;type:varchar(64);index"`
	OrderID        string          `gorm:"column:order_id;type:varchar(64);uniqueIndex"`
	GatewayOrderID string          `gorm:"column:gateway_order_id;type:varchar(64)"`
	GatewayID      string          `gorm:"column:gateway_id;type:varchar(64)"`
	Amount         int64           `gorm:"column:amount"`
	TransferType   string          `gorm:"column:transfer_type;type:varchar(16)"`
	Status         string          `gorm:"column:status;type:varchar(64)"`
	RRN            string          `gorm:"column:rrn;type:varchar(64)"`
	OpeningBalance decimal.Decimal `gorm:"column:opening_balance;type:decimal(20,2)"`
	LockedAmount   decimal.Decimal `gorm:"column:locked_amount;type:decimal(20,2)"`
	ChargedAmount  decimal.Decimal `gorm:"column:charged_amount;type:decimal(20,2)"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
}

func (SendMoneyHistory) TableName() string {
	return "send_money_history"
}
