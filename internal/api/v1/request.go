package v1

// BatchDefaultsRequest is the JSON carried in the "data" part of a bulk upload.
type BatchDefaultsRequest struct {
	Mobile    string `json:"mobile" validate:"required,mobile"`
	Email     string `json:"email" validate:"required,email"`
	PAN       string `json:"pan" validate:"required,pan"`
	Aadhaar   string `json:"aadhaar" validate:"required,aadhaar"`
	BankName  string `json:"bankName" validate:"required"`
	BeneType  string `json:"beneType" validate:"required"`
	Latitude  int64  `json:"latitude" validate:"min=-90,max=90"`
	Longitude int64  `json:"longitude" validate:"min=-180,max=180"`
	Address   string `json:"address" validate:"omitempty,json"`
}

type AddBeneficiaryRequest struct {
	AccountNumber string `json:"accountNumber" validate:"required,numeric,min=6,max=20"`
	IFSC          string `json:"ifsc" validate:"required,ifsc"`
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Mobile        string `json:"mobile" validate:"required,mobile"`
	PAN           string `json:"pan" validate:"required,pan"`
	Aadhaar       string `json:"aadhaar" validate:"required,aadhaar"`
	BankName      string `json:"bankName" validate:"required"`
	BeneType      string `json:"beneType" validate:"required"`
	Address       string `json:"address" validate:"omitempty,json"`
	Latitude      int64  `json:"latitude" validate:"min=-90,max=90"`
	Longitude     int64  `json:"longitude" validate:"min=-180,max=180"`
}

type UpdateBeneficiaryRequest struct {
	IFSC          string `query:"beneficiaryIfscCode" validate:"required,ifsc"`
	BeneficiaryID string `query:"beneficiaryId" validate:"required"`
}

type SendMoneyRequest struct {
	OrderID       string `json:"orderId"`
	BeneficiaryID string `json:"beneficiaryId" validate:"required"`
	Name          string `json:"name" validate:"required"`
	MobileNo      string `json:"mobileNo" validate:"required,mobile"`
	Amount        int64  `json:"amount" validate:"required,min=1"`
	TransferType  string `json:"transferType" validate:"required,oneof=IMPS NEFT RTGS"`
	Comments      string `json:"comments"`
	Remarks       string `json:"remarks"`
}

type BeneficiaryDetailsRequest struct {
	Phone string `query:"phone" validate:"required,mobile"`
}

type TransactionDetailsRequest struct {
	BeneficiaryID string `query:"beneficiaryId" validate:"required"`
}

type CheckStatusRequest struct {
	OrderID string `query:"orderId" validate:"required"`
}

type BatchLinesRequest struct {
	TransactionID string `query:"transactionId" validate:"required"`
}

type DecisionRequest struct {
	TransactionID string `query:"transactionId" validate:"required"`
	Status        string `query:"status" validate:"required,boolean"`
}

type PayoutCallbackRequest struct {
	StatusCode string `query:"statuscode"`
	Status     string `query:"status" validate:"required"`
	Data       string `query:"data" validate:"required"`
}
