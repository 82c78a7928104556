package service

import (
	"context"
	"errors"
	"time"

	"github.com/Behyna/payout-services/internal/constants"
	"github.com/Behyna/payout-services/internal/metrics"
	"github.com/Behyna/payout-services/internal/model"
	"github.com/Behyna/payout-services/internal/repository"
	"github.com/Behyna/payout-services/pkg/spreadsheet"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	batchRemarks       = "Vendor Payments"
	batchCommentPrefix = "Payout Of "
	commentTimeLayout  = "2006-01-02 15:04:05"
)

// BatchDispatcher hands an accepted batch to a background worker.
type BatchDispatcher interface {
	DispatchBatch(ctx context.Context, cmd ExecuteBatchCommand) error
}

type BulkPayoutService interface {
	Upload(ctx context.Context, cmd UploadBulkPayoutCommand) (UploadBulkPayoutResult, error)
	AcceptOrDeny(ctx context.Context, cmd AcceptOrDenyCommand) (DecisionResult, error)
	ExecuteBatch(ctx context.Context, cmd ExecuteBatchCommand) error
	ListBatches(ctx context.Context, memberID string, query PageQuery) (BatchPage, error)
	ListBatchLines(ctx context.Context, transactionID, memberID string) (BatchLines, error)
}

type bulkPayout struct {
	headerRepo    repository.BulkPaymentRepository
	lineRepo      repository.BulkPaymentLineRepository
	txManager     repository.TxManager
	beneficiaries BeneficiaryService
	transfers     TransferService
	dispatcher    BatchDispatcher
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewBulkPayoutService builds the orchestrator. A nil dispatcher makes accept run
// the transfers inside the request.
func NewBulkPayoutService(headerRepo repository.BulkPaymentRepository, lineRepo repository.BulkPaymentLineRepository,
	txManager repository.TxManager, beneficiaries BeneficiaryService, transfers TransferService,
	dispatcher BatchDispatcher, m *metrics.Metrics, logger *zap.Logger) BulkPayoutService {
	return &bulkPayout{
		headerRepo:    headerRepo,
		lineRepo:      lineRepo,
		txManager:     txManager,
		beneficiaries: beneficiaries,
		transfers:     transfers,
		dispatcher:    dispatcher,
		metrics:       m,
		logger:        logger,
	}
}

func (b *bulkPayout) Upload(ctx context.Context, cmd UploadBulkPayoutCommand) (UploadBulkPayoutResult, error) {
	sheet, err := spreadsheet.Read(cmd.File)
	if errors.Is(err, spreadsheet.ErrEmptyFile) {
		b.metrics.RecordBatchUploaded("empty_file")
		return UploadBulkPayoutResult{}, NewServiceError(constants.ErrCodeEmptyFile, ErrEmptyFile)
	}

	if err != nil {
		b.metrics.RecordBatchUploaded("invalid")
		b.logger.Warn("Rejected bulk payout upload", zap.String("memberID", cmd.MemberID), zap.Error(err))
		return UploadBulkPayoutResult{}, NewServiceError(constants.ErrCodeInvalidSpreadsheet, err)
	}

	if len(sheet.Records) == 0 {
		b.metrics.RecordBatchUploaded("no_rows")
		return UploadBulkPayoutResult{}, NewServiceError(constants.ErrCodeNoRows, ErrNoRows)
	}

	uploadedAt := time.Now()
	comment := batchCommentPrefix + uploadedAt.Format(commentTimeLayout)

	var (
		transactionID string
		lines         []model.BulkPaymentLine
		outcomes      []RowOutcome
	)

	err = b.txManager.WithTx(ctx, func(ctx context.Context) error {
		lines = lines[:0]
		outcomes = outcomes[:0]

		for i, record := range sheet.Records {
			row := ParseRow(record, cmd.Defaults)

			line, outcome, err := b.ingestRow(ctx, i, row, cmd.Defaults)
			if err != nil {
				return err
			}

			outcomes = append(outcomes, outcome)
			if outcome != RowAccepted {
				continue
			}

			line.MemberID = cmd.MemberID
			line.Comment = comment
			line.Remarks = batchRemarks
			line.CreatedAt = uploadedAt
			line.UpdatedAt = uploadedAt
			lines = append(lines, line)
		}

		id, err := b.newTransactionID(ctx)
		if err != nil {
			return databaseError(err)
		}
		transactionID = id

		header := model.BulkPayment{
			MemberID:      cmd.MemberID,
			TransactionID: transactionID,
			Status:        model.BulkPaymentStatusPending,
			CreatedAt:     uploadedAt,
			UpdatedAt:     uploadedAt,
		}

		if err := b.headerRepo.Create(ctx, &header); err != nil {
			b.logger.Error("Failed to create bulk payment header",
				zap.String("transactionID", transactionID),
				zap.Error(err))
			return databaseError(err)
		}

		for i := range lines {
			lines[i].TransactionID = transactionID
		}

		if err := b.lineRepo.CreateInBatches(ctx, lines); err != nil {
			b.logger.Error("Failed to create bulk payment lines",
				zap.String("transactionID", transactionID),
				zap.Int("lines", len(lines)),
				zap.Error(err))
			return databaseError(err)
		}

		return nil
	})

	if err != nil {
		b.metrics.RecordBatchUploaded("error")
		b.logger.Error("Bulk payout upload rolled back",
			zap.String("memberID", cmd.MemberID),
			zap.Error(err))
		return UploadBulkPayoutResult{}, err
	}

	for _, outcome := range outcomes {
		b.metrics.RecordRowIngested(outcome.String())
	}
	b.metrics.RecordBatchUploaded("success")

	b.logger.Info("Bulk payout batch created",
		zap.String("transactionID", transactionID),
		zap.String("memberID", cmd.MemberID),
		zap.Int("rows", len(sheet.Records)),
		zap.Int("lines", len(lines)))

	data := make([]map[string]string, 0, len(sheet.Records))
	for _, record := range sheet.Records {
		data = append(data, record)
	}

	return UploadBulkPayoutResult{
		Message:       MsgUploadSucceeded,
		TransactionID: transactionID,
		Ingested:      len(lines),
		Data:          data,
		Outcomes:      outcomes,
	}, nil
}

// ingestRow resolves one row to a pending line. Row level problems become an
// outcome; only unexpected store errors are returned.
func (b *bulkPayout) ingestRow(ctx context.Context, index int, row PayoutRow,
	defaults BatchDefaults) (model.BulkPaymentLine, RowOutcome, error) {
	if !row.HasAccount() {
		b.logger.Info("Skipping row without account number", zap.Int("row", index+1))
		return model.BulkPaymentLine{}, RowSkippedBlankAccount, nil
	}

	if !row.AmountValid {
		b.logger.Warn("Invalid amount, defaulting to 0",
			zap.Int("row", index+1),
			zap.String("amount", row.AmountRaw))
	}

	bene, err := b.beneficiaries.FindActiveByAccountNumber(ctx, row.AccountNumber)
	if errors.Is(err, repository.ErrBeneficiaryNotFound) {
		bene, err = b.beneficiaries.RegisterAndPersist(ctx, row.registration(defaults))
		if err != nil {
			b.logger.Warn("Skipping row, beneficiary registration failed",
				zap.Int("row", index+1),
				zap.Error(err))
			return model.BulkPaymentLine{}, RowRegistrationFailed, nil
		}
	} else if err != nil {
		b.logger.Error("Beneficiary lookup failed", zap.Int("row", index+1), zap.Error(err))
		return model.BulkPaymentLine{}, RowAccepted, databaseError(err)
	}

	return model.BulkPaymentLine{
		BeneficiaryID:        bene.ID,
		GatewayBeneficiaryID: bene.BeneficiaryID,
		BeneficiaryName:      bene.Name,
		MobileNo:             bene.Mobile,
		TransactionType:      row.TransferType,
		Amount:               row.Amount,
		Status:               model.BulkPaymentStatusPending,
	}, RowAccepted, nil
}

func (b *bulkPayout) newTransactionID(ctx context.Context) (string, error) {
	for {
		id := uuid.NewString()

		exists, err := b.headerRepo.ExistsByTransactionID(ctx, id)
		if err != nil {
			return "", err
		}

		if !exists {
			return id, nil
		}

		b.logger.Warn("Transaction id already in use, regenerating", zap.String("transactionID", id))
	}
}

func (b *bulkPayout) AcceptOrDeny(ctx context.Context, cmd AcceptOrDenyCommand) (DecisionResult, error) {
	if !cmd.Accept {
		return b.deny(ctx, cmd)
	}

	b.metrics.RecordBatchDecision("accept")
	execute := ExecuteBatchCommand{TransactionID: cmd.TransactionID, MemberID: cmd.MemberID}

	if b.dispatcher != nil {
		return b.enqueue(ctx, execute)
	}

	if err := b.ExecuteBatch(ctx, execute); err != nil {
		return DecisionResult{}, err
	}

	return DecisionResult{Message: MsgBatchProcessed}, nil
}

// deny marks only the header; line items keep their PENDING status.
func (b *bulkPayout) deny(ctx context.Context, cmd AcceptOrDenyCommand) (DecisionResult, error) {
	b.metrics.RecordBatchDecision("deny")

	rows, err := b.headerRepo.UpdateStatusByMemberAndTransaction(ctx, cmd.MemberID, cmd.TransactionID,
		model.BulkPaymentStatusDenied)
	if err != nil {
		b.logger.Error("Failed to deny bulk payment",
			zap.String("transactionID", cmd.TransactionID),
			zap.Error(err))
		return DecisionResult{}, databaseError(err)
	}

	if rows == 0 {
		b.logger.Warn("Deny matched no bulk payment",
			zap.String("transactionID", cmd.TransactionID),
			zap.String("memberID", cmd.MemberID))
	}

	return DecisionResult{Message: MsgPaymentsDenied}, nil
}

func (b *bulkPayout) enqueue(ctx context.Context, cmd ExecuteBatchCommand) (DecisionResult, error) {
	count, err := b.lineRepo.CountByTransactionAndMember(ctx, cmd.TransactionID, cmd.MemberID)
	if err != nil {
		return DecisionResult{}, databaseError(err)
	}

	if count == 0 {
		return DecisionResult{}, NewServiceError(constants.ErrCodeBatchNotFound, ErrBatchNotFound)
	}

	if err := b.dispatcher.DispatchBatch(ctx, cmd); err != nil {
		b.logger.Error("Failed to queue bulk payment",
			zap.String("transactionID", cmd.TransactionID),
			zap.Error(err))
		return DecisionResult{}, NewServiceError(constants.ErrCodeQueue, err)
	}

	return DecisionResult{Message: MsgBatchQueued}, nil
}

// ExecuteBatch transfers every pending line of a batch one after another. Each
// line commits on its own and the header status is left as it is.
func (b *bulkPayout) ExecuteBatch(ctx context.Context, cmd ExecuteBatchCommand) error {
	lines, err := b.lineRepo.FindByTransactionAndMember(ctx, cmd.TransactionID, cmd.MemberID)
	if err != nil {
		b.logger.Error("Failed to load bulk payment lines",
			zap.String("transactionID", cmd.TransactionID),
			zap.Error(err))
		return databaseError(err)
	}

	if len(lines) == 0 {
		return NewServiceError(constants.ErrCodeBatchNotFound, ErrBatchNotFound)
	}

	var completed, failed, skipped int

	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}

		if line.Status != model.BulkPaymentStatusPending {
			skipped++
			continue
		}

		status := b.executeLine(ctx, line)

		// the transfer has been issued; its outcome is written even when ctx is done
		if err := b.lineRepo.UpdateStatus(context.WithoutCancel(ctx), line.ID, status); err != nil {
			b.logger.Error("Failed to record line outcome",
				zap.String("transactionID", cmd.TransactionID),
				zap.Int64("lineID", line.ID),
				zap.String("status", string(status)),
				zap.Error(err))
			return NewServiceError(constants.ErrCodeLineStatus, err)
		}

		b.metrics.RecordLineOutcome(string(status))
		if status == model.BulkPaymentStatusCompleted {
			completed++
		} else {
			failed++
		}
	}

	b.logger.Info("Bulk payment executed",
		zap.String("transactionID", cmd.TransactionID),
		zap.Int("completed", completed),
		zap.Int("failed", failed),
		zap.Int("skipped", skipped))

	return nil
}

func (b *bulkPayout) executeLine(ctx context.Context, line model.BulkPaymentLine) model.BulkPaymentStatus {
	resp, err := b.transfers.Transfer(ctx, TransferCommand{
		OrderID:       uuid.NewString(),
		BeneficiaryID: line.GatewayBeneficiaryID,
		Name:          line.BeneficiaryName,
		MobileNo:      line.MobileNo,
		Amount:        line.Amount,
		TransferType:  line.TransactionType,
		Comments:      line.Comment,
		Remarks:       line.Remarks,
	})
	if err != nil || !resp.Accepted() {
		return model.BulkPaymentStatusFailed
	}

	return model.BulkPaymentStatusCompleted
}

func (b *bulkPayout) ListBatches(ctx context.Context, memberID string, query PageQuery) (BatchPage, error) {
	query = ClampPage(query.Page, query.Size)

	total, err := b.headerRepo.CountByMember(ctx, memberID)
	if err != nil {
		return BatchPage{}, databaseError(err)
	}

	headers, err := b.headerRepo.FindByMember(ctx, memberID, query.Size, query.Offset())
	if err != nil {
		return BatchPage{}, databaseError(err)
	}

	if headers == nil {
		headers = []model.BulkPayment{}
	}

	return BatchPage{
		TransactionHistory: headers,
		TotalPages:         query.TotalPages(total),
		TotalElements:      total,
		CurrentPage:        query.Page,
	}, nil
}

func (b *bulkPayout) ListBatchLines(ctx context.Context, transactionID, memberID string) (BatchLines, error) {
	lines, err := b.lineRepo.FindByTransactionAndMember(ctx, transactionID, memberID)
	if err != nil {
		return BatchLines{}, databaseError(err)
	}

	if len(lines) == 0 {
		return BatchLines{Message: MsgLinesNotFound, Lines: []model.BulkPaymentLine{}}, nil
	}

	return BatchLines{Message: MsgLinesFetched, Lines: lines}, nil
}
