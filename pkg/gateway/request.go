package gateway

type RegisterBeneficiaryRequest struct {
	AccountNumber string
	IFSC          string
	Name          string
	Email         string
	Phone         string
	PAN           string
	Aadhaar       string
	Address       string
	BeneType      string
	Latitude      int64
	Longitude     int64
}

type TransferRequest struct {
	OrderID       string
	Name          string
	Amount        int64
	MobileNo      string
	Comments      string
	TransferType  string
	BeneficiaryID string
	Remarks       string
}
