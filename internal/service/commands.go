package service

import "io"

// BatchDefaults are the beneficiary fields supplied once for a whole upload.
type BatchDefaults struct {
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
	PAN       string `json:"pan"`
	Aadhaar   string `json:"aadhaar"`
	BankName  string `json:"bankName"`
	BeneType  string `json:"beneType"`
	Latitude  int64  `json:"latitude"`
	Longitude int64  `json:"longitude"`
	Address   string `json:"address"`
}

type UploadBulkPayoutCommand struct {
	MemberID string
	File     io.Reader
	Defaults BatchDefaults
}

type AcceptOrDenyCommand struct {
	MemberID      string
	TransactionID string
	Accept        bool
}

// ExecuteBatchCommand is also the message body published for asynchronous acceptance.
type ExecuteBatchCommand struct {
	TransactionID string `json:"transaction_id"`
	MemberID      string `json:"member_id"`
}

type RegisterBeneficiaryCommand struct {
	AccountNumber string
	IFSC          string
	Name          string
	Email         string
	Mobile        string
	PAN           string
	Aadhaar       string
	BankName      string
	BeneType      string
	Address       string
	Latitude      int64
	Longitude     int64
}

type UpdateRoutingCommand struct {
	BeneficiaryID string
	IFSC          string
}

type TransferCommand struct {
	OrderID       string
	BeneficiaryID string
	Name          string
	MobileNo      string
	Amount        int64
	TransferType  string
	Comments      string
	Remarks       string
}

type PayoutCallbackCommand struct {
	StatusCode string
	Status     string
	Data       string
}

type PageQuery struct {
	Page int
	Size int
}
