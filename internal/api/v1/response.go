package v1

const (
	codeSuccess = "success"

	msgTypesFetched       = "Beneficiary types fetched successfully"
	msgPayReasonsFetched  = "Pay reasons fetched successfully"
	msgBeneficiaryAdded   = "Beneficiary added successfully"
	msgBeneficiaryUpdated = "Beneficiary updated successfully"
	msgDetailsFetched     = "Beneficiary details fetched successfully"
	msgTransferAccepted   = "Transfer accepted"
	msgStatusFetched      = "Transaction status fetched successfully"
	msgWalletFetched      = "Wallet balance fetched successfully"
	msgBalanceSynced      = "Wallet balance synchronised"
	msgBalanceNotSynced   = "Wallet balance not updated"
	msgCallbackReceived   = "Callback processed"
)

type UploadResponse struct {
	Message       string              `json:"message"`
	TransactionID string              `json:"transactionId"`
	Ingested      int                 `json:"ingested"`
	Data          []map[string]string `json:"data"`
}

type BalanceSyncResponse struct {
	Updated bool `json:"updated"`
}
