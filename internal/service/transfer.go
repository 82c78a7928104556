package service

import (
	"context"
	"time"

	"github.com/Behyna/payout-services/internal/model"
	"github.com/Behyna/payout-services/internal/repository"
	"github.com/Behyna/payout-services/pkg/gateway"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TransferService interface {
	Transfer(ctx context.Context, cmd TransferCommand) (gateway.TransferResponse, error)
	SendMoney(ctx context.Context, cmd TransferCommand) (gateway.TransferResponse, error)
	CheckStatus(ctx context.Context, orderID string) (Document, error)
	TransactionsByBeneficiary(ctx context.Context, beneficiaryID string, query PageQuery) (TransactionPage, error)
	AllTransactions(ctx context.Context, query PageQuery) (PayoutTransactionPage, error)
}

type transfer struct {
	gateway       gateway.Gateway
	sendMoneyRepo repository.SendMoneyRepository
	beneRepo      repository.BeneficiaryRepository
	wallet        WalletBalanceService
	merchantID    string
	logger        *zap.Logger
}

func NewTransferService(gw gateway.Gateway, sendMoneyRepo repository.SendMoneyRepository,
	beneRepo repository.BeneficiaryRepository, wallet WalletBalanceService, merchantID string,
	logger *zap.Logger) TransferService {
	return &transfer{
		gateway:       gw,
		sendMoneyRepo: sendMoneyRepo,
		beneRepo:      beneRepo,
		wallet:        wallet,
		merchantID:    merchantID,
		logger:        logger,
	}
}

// Transfer sends one payment under the caller's order id. An accepted transfer is
// recorded in the send money history and seeds the wallet balance when none exists.
// Failures to record are logged only: the gateway has already moved the money.
func (t *transfer) Transfer(ctx context.Context, cmd TransferCommand) (gateway.TransferResponse, error) {
	resp, err := t.gateway.TransferMoney(ctx, gateway.TransferRequest{
		OrderID:       cmd.OrderID,
		Name:          cmd.Name,
		Amount:        cmd.Amount,
		MobileNo:      cmd.MobileNo,
		Comments:      cmd.Comments,
		TransferType:  cmd.TransferType,
		BeneficiaryID: cmd.BeneficiaryID,
		Remarks:       cmd.Remarks,
	})
	if err != nil {
		t.logger.Error("Gateway transfer failed",
			zap.String("orderID", cmd.OrderID),
			zap.String("beneficiaryID", cmd.BeneficiaryID),
			zap.Error(err))
		return gateway.TransferResponse{}, gatewayError(err)
	}

	if !resp.Accepted() {
		t.logger.Warn("Gateway did not accept transfer",
			zap.String("orderID", cmd.OrderID),
			zap.String("statusCode", resp.StatusCode),
			zap.String("status", resp.Status))
		return resp, nil
	}

	opening := t.parseAmount("opening_bal", resp.Data.OpeningBalance)
	now := time.Now()

	record := model.SendMoneyHistory{
		MemberID:       t.merchantID,
		BeneficiaryID:  cmd.BeneficiaryID,
		OrderID:        resp.Data.OrderID,
		GatewayOrderID: resp.Data.GatewayOrderID,
		GatewayID:      resp.Data.GatewayID,
		Amount:         cmd.Amount,
		TransferType:   cmd.TransferType,
		Status:         resp.Status,
		RRN:            resp.Data.RRN,
		OpeningBalance: opening,
		LockedAmount:   t.parseAmount("locked_amt", resp.Data.LockedAmount),
		ChargedAmount:  t.parseAmount("charged_amt", resp.Data.ChargedAmount),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := t.sendMoneyRepo.Create(ctx, &record); err != nil {
		t.logger.Error("Failed to record accepted transfer",
			zap.String("orderID", record.OrderID),
			zap.Error(err))
	}

	if err := t.wallet.SeedIfEmpty(ctx, t.merchantID, opening); err != nil {
		t.logger.Error("Failed to seed wallet balance", zap.Error(err))
	}

	return resp, nil
}

func (t *transfer) SendMoney(ctx context.Context, cmd TransferCommand) (gateway.TransferResponse, error) {
	if cmd.OrderID == "" {
		cmd.OrderID = uuid.NewString()
	}
	return t.Transfer(ctx, cmd)
}

func (t *transfer) CheckStatus(ctx context.Context, orderID string) (Document, error) {
	doc, err := t.gateway.CheckStatus(ctx, orderID)
	if err != nil {
		t.logger.Error("Gateway status check failed", zap.String("orderID", orderID), zap.Error(err))
		return nil, gatewayError(err)
	}
	return doc, nil
}

func (t *transfer) TransactionsByBeneficiary(ctx context.Context, beneficiaryID string, query PageQuery) (TransactionPage, error) {
	query = ClampPage(query.Page, query.Size)

	total, err := t.sendMoneyRepo.CountByBeneficiaryID(ctx, beneficiaryID)
	if err != nil {
		return TransactionPage{}, databaseError(err)
	}

	if total == 0 {
		return TransactionPage{Message: MsgTransactionsNotFound, Transactions: []model.SendMoneyHistory{}}, nil
	}

	records, err := t.sendMoneyRepo.FindByBeneficiaryID(ctx, beneficiaryID, query.Size, query.Offset())
	if err != nil {
		return TransactionPage{}, databaseError(err)
	}

	return TransactionPage{
		Message:       MsgTransactionsFetched,
		Transactions:  records,
		TotalPages:    query.TotalPages(total),
		TotalElements: total,
	}, nil
}

func (t *transfer) AllTransactions(ctx context.Context, query PageQuery) (PayoutTransactionPage, error) {
	query = ClampPage(query.Page, query.Size)

	total, err := t.sendMoneyRepo.CountByMember(ctx, t.merchantID)
	if err != nil {
		return PayoutTransactionPage{}, databaseError(err)
	}

	if total == 0 {
		return PayoutTransactionPage{Message: MsgNoBeneficiaries, Transactions: []PayoutTransaction{}}, nil
	}

	records, err := t.sendMoneyRepo.FindByMember(ctx, t.merchantID, query.Size, query.Offset())
	if err != nil {
		return PayoutTransactionPage{}, databaseError(err)
	}

	ids := make([]string, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if _, ok := seen[r.BeneficiaryID]; ok {
			continue
		}
		seen[r.BeneficiaryID] = struct{}{}
		ids = append(ids, r.BeneficiaryID)
	}

	beneficiaries, err := t.beneRepo.FindByBeneficiaryIDs(ctx, ids)
	if err != nil {
		return PayoutTransactionPage{}, databaseError(err)
	}

	names := make(map[string]string, len(beneficiaries))
	for _, b := range beneficiaries {
		names[b.BeneficiaryID] = b.Name
	}

	transactions := make([]PayoutTransaction, 0, len(records))
	for _, r := range records {
		transactions = append(transactions, PayoutTransaction{SendMoneyHistory: r, BeneficiaryName: names[r.BeneficiaryID]})
	}

	return PayoutTransactionPage{
		Message:       MsgTransactionsFetched,
		Transactions:  transactions,
		TotalPages:    query.TotalPages(total),
		TotalElements: total,
		CurrentPage:   query.Page,
	}, nil
}

func (t *transfer) parseAmount(field, value string) decimal.Decimal {
	return parseDecimal(t.logger, field, value)
}

func parseDecimal(logger *zap.Logger, field, value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		logger.Warn("Unparseable gateway amount",
			zap.String("field", field),
			zap.String("value", value))
		return decimal.Zero
	}

	return amount
}
