package model

import "time"

type Beneficiary struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	MemberID             string    `gorm:"column:member_id;type:varchar(64);not null"`
	BeneficiaryID        string    `gorm:"column:beneficiary_id;type:varchar(64);index"`
	BeneType             string    `gorm:"column:bene_type;type:varchar(64)"`
	AccountNumber        string    `gorm:"column:account_number;type:varchar(64);index:idx_account_status"`
	IFSC                 string    `gorm:"column:ifsc;type:varchar(32)"`
	Name                 string    `gorm:"column:name;type:varchar(255)"`
	Email                string    `gorm:"column:email;type:varchar(255)"`
	Mobile               string    `gorm:"column:mobile;type:varchar(20)"`
	PAN                  string    `gorm:"column:pan;type:varchar(16)"`
	Aadhaar              string    `gorm:"column:aadhaar;type:varchar(16)"`
	BankName             string    `gorm:"column:bank_name;type:varchar(255)"`
	Address              string    `gorm:"column:address;type:text"`
	Latitude             int64     `gorm:"column:latitude"`
	Longitude            int64     `gorm:"column:longitude"`
	AgreementSigned      bool      `gorm:"column:agreement_signed;default:true"`
	VerificationComplete bool      `gorm:"column:verification_complete;default:true"`
	Status               bool      `gorm:"column:status;index:idx_account_status;not null"`
	CreatedAt            time.Time `gorm:"column:created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

func (Beneficiary) TableName() string {
	return "beneficiary"
}
