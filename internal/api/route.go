package api

import (
	v1 "github.com/Behyna/payout-services/internal/api/v1"
	"github.com/gofiber/fiber/v2"
)

const (
	prefixV1     = "/api/v1"
	callbackPath = "/callback/payout"
)

// SetupRoutes registers the v1 API. The gateway callback is public; every other v1 route requires auth.
func SetupRoutes(app *fiber.App, handler *v1.Handler, auth fiber.Handler) {
	app.Get("/ping", handler.Pong)

	api := app.Group(prefixV1)
	api.Get(callbackPath, handler.PayoutCallback)

	secured := api.Group("", auth)

	payout := secured.Group("/payout")
	payout.Get("/beneficiary-type", handler.BeneficiaryTypes)
	payout.Get("/pay-reason", handler.PayReasons)
	payout.Post("/add/beneficiary", handler.AddBeneficiary)
	payout.Post("/update/beneficiary", handler.UpdateBeneficiary)
	payout.Get("/beneficiary-details", handler.BeneficiaryDetails)
	payout.Post("/send-money", handler.SendMoney)
	payout.Get("/transaction-details", handler.TransactionDetails)
	payout.Get("/check-status", handler.CheckStatus)
	payout.Get("/beneficiary-list", handler.BeneficiaryList)
	payout.Get("/all-payout-transaction", handler.AllPayoutTransactions)

	payout.Post("/beneficiaries/bulk-upload", handler.BulkUpload)
	payout.Get("/bulk-upload-transaction-ids", handler.BulkTransactionIDs)
	payout.Get("/bulk-upload-amount-details-by-transaction-id", handler.BulkAmountDetails)
	payout.Post("/bulk-upload-payment-accept-or-denied", handler.AcceptOrDeny)

	secured.Get("/wallet-balance/get", handler.WalletBalance)
	secured.Get("/balance", handler.SyncBalance)
}
