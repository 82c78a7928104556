package model

import "time"

type BulkPaymentStatus string

const (
	BulkPaymentStatusPending   BulkPaymentStatus = "PENDING"
	BulkPaymentStatusDenied    BulkPaymentStatus = "DENIED"
	BulkPaymentStatusCompleted BulkPaymentStatus = "COMPLETED"
	BulkPaymentStatusFailed    BulkPaymentStatus = "FAILED"
)

// BulkPayment is the header of an uploaded batch. Only the deny path ever changes its status.
type BulkPayment struct {
	ID            int64             `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	MemberID      string            `gorm:"column:member_id;type:varchar(64);index;not null"`
	TransactionID string            `gorm:"column:transaction_id;type:varchar(64);uniqueIndex;not null"`
	Status        BulkPaymentStatus `gorm:"column:status;type:varchar(16);not null"`
	CreatedAt     time.Time         `gorm:"column:created_at"`
	UpdatedAt     time.Time         `gorm:"column:updated_at"`
}

func (BulkPayment) TableName() string {
	return "bulk_payment_history"
}

// BulkPaymentLine keeps a frozen copy of the beneficiary fields taken at upload time.
type BulkPaymentLine struct {
	ID                   int64             `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	MemberID             string            `gorm:"column:member_id;type:varchar(64);index:idx_line_tx_member;not null"`
	TransactionID        string            `gorm:"column:transaction_id;type:varchar(64);index:idx_line_tx_member;not null"`
	BeneficiaryID        int64             `gorm:"column:beneficiary_id;not null"`
	GatewayBeneficiaryID string            `gorm:"column:gateway_beneficiary_id;type:varchar(64)"`
	BeneficiaryName      string            `gorm:"column:beneficiary_name;type:varchar(255)"`
	MobileNo             string            `gorm:"column:mobile_no;type:varchar(20)"`
	TransactionType      string            `gorm:"column:transaction_type;type:varchar(16)"`
	Comment              string            `gorm:"column:comment;type:varchar(255)"`
	Remarks              string            `gorm:"column:remarks;type:varchar(255)"`
	Amount               int64             `gorm:"column:amount;not null"`
	Status               BulkPaymentStatus `gorm:"column:status;type:varchar(16);not null"`
	CreatedAt            time.Time         `gorm:"column:created_at"`
	UpdatedAt            time.Time         `gorm:"column:updated_at"`
}

func (BulkPaymentLine) TableName() string {
	return "bulk_payment_transaction_history"
}
