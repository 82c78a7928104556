package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Behyna/payout-services/internal/constants"
	"github.com/Behyna/payout-services/internal/model"
	"github.com/Behyna/payout-services/internal/repository"
	"github.com/Behyna/payout-services/pkg/gateway"
	"go.uber.org/zap"
)

const (
	gatewayStatusSuccess = "SUCCESS"
	gatewayStatusUpdated = "UPDATED"
)

type BeneficiaryService interface {
	FindActiveByAccountNumber(ctx context.Context, accountNumber string) (*model.Beneficiary, error)
	RegisterAndPersist(ctx context.Context, cmd RegisterBeneficiaryCommand) (*model.Beneficiary, error)
	Add(ctx context.Context, cmd RegisterBeneficiaryCommand) (gateway.BeneficiaryResponse, error)
	UpdateRouting(ctx context.Context, cmd UpdateRoutingCommand) (UpdateRoutingResult, error)
	Details(ctx context.Context, phone string) (Document, error)
	Types(ctx context.Context) (Document, error)
	PayReasons(ctx context.Context) (Document, error)
	List(ctx context.Context, query PageQuery) (BeneficiaryPage, error)
}

type beneficiary struct {
	repo       repository.BeneficiaryRepository
	gateway    gateway.Gateway
	merchantID string
	logger     *zap.Logger
}

func NewBeneficiaryService(repo repository.BeneficiaryRepository, gw gateway.Gateway, merchantID string,
	logger *zap.Logger) BeneficiaryService {
	return &beneficiary{repo: repo, gateway: gw, merchantID: merchantID, logger: logger}
}

func (b *beneficiary) FindActiveByAccountNumber(ctx context.Context, accountNumber string) (*model.Beneficiary, error) {
	return b.repo.FindActiveByAccountNumber(ctx, accountNumber)
}

// RegisterAndPersist stores the beneficiary only when the gateway answers SUCCESS.
func (b *beneficiary) RegisterAndPersist(ctx context.Context, cmd RegisterBeneficiaryCommand) (*model.Beneficiary, error) {
	resp, err := b.register(ctx, cmd)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(resp.DataStatus(), gatewayStatusSuccess) {
		b.logger.Warn("Beneficiary registration rejected",
			zap.String("accountNumber", cmd.AccountNumber),
			zap.String("status", resp.DataStatus()),
			zap.String("message", resp.Status))
		return nil, NewServiceError(constants.ErrCodeRegistrationRejected,
			fmt.Errorf("%w: %s", ErrRegistrationRejected, resp.Status))
	}

	record := b.toModel(cmd, resp.Data.BeneficiaryID)
	if err := b.repo.Create(ctx, record); err != nil {
		b.logger.Error("Failed to persist beneficiary",
			zap.String("beneficiaryID", resp.Data.BeneficiaryID),
			zap.Error(err))
		return nil, databaseError(err)
	}

	return record, nil
}

func (b *beneficiary) Add(ctx context.Context, cmd RegisterBeneficiaryCommand) (gateway.BeneficiaryResponse, error) {
	resp, err := b.register(ctx, cmd)
	if err != nil {
		return gateway.BeneficiaryResponse{}, err
	}

	if !strings.EqualFold(resp.DataStatus(), gatewayStatusSuccess) {
		b.logger.Info("Beneficiary not added",
			zap.String("accountNumber", cmd.AccountNumber),
			zap.String("status", resp.Status))
		return resp, nil
	}

	if err := b.repo.Create(ctx, b.toModel(cmd, resp.Data.BeneficiaryID)); err != nil {
		b.logger.Error("Failed to persist beneficiary",
			zap.String("beneficiaryID", resp.Data.BeneficiaryID),
			zap.Error(err))
		return gateway.BeneficiaryResponse{}, databaseError(err)
	}

	return resp, nil
}

func (b *beneficiary) UpdateRouting(ctx context.Context, cmd UpdateRoutingCommand) (UpdateRoutingResult, error) {
	resp, err := b.gateway.UpdateRouting(ctx, cmd.BeneficiaryID, cmd.IFSC)
	if err != nil {
		b.logger.Error("Gateway routing update failed",
			zap.String("beneficiaryID", cmd.BeneficiaryID),
			zap.Error(err))
		return UpdateRoutingResult{}, gatewayError(err)
	}

	if !strings.EqualFold(resp.DataStatus(), gatewayStatusUpdated) {
		b.logger.Warn("Gateway did not update routing code",
			zap.String("beneficiaryID", cmd.BeneficiaryID),
			zap.String("status", resp.DataStatus()))
		return UpdateRoutingResult{Response: resp}, nil
	}

	record, err := b.repo.FindByBeneficiaryID(ctx, cmd.BeneficiaryID)
	if errors.Is(err, repository.ErrBeneficiaryNotFound) {
		return UpdateRoutingResult{}, NewServiceError(constants.ErrCodeBeneficiaryNotFound, err)
	}

	if err != nil {
		return UpdateRoutingResult{}, databaseError(err)
	}

	if err := b.repo.UpdateIFSC(ctx, record.ID, cmd.IFSC); err != nil {
		b.logger.Error("Failed to update local routing code",
			zap.String("beneficiaryID", cmd.BeneficiaryID),
			zap.Error(err))
		return UpdateRoutingResult{}, databaseError(err)
	}

	return UpdateRoutingResult{Updated: true, Response: resp}, nil
}

func (b *beneficiary) Details(ctx context.Context, phone string) (Document, error) {
	doc, err := b.gateway.BeneficiaryDetails(ctx, phone)
	if err != nil {
		return nil, gatewayError(err)
	}
	return doc, nil
}

func (b *beneficiary) Types(ctx context.Context) (Document, error) {
	doc, err := b.gateway.BeneficiaryTypes(ctx)
	if err != nil {
		return nil, gatewayError(err)
	}
	return doc, nil
}

func (b *beneficiary) PayReasons(ctx context.Context) (Document, error) {
	doc, err := b.gateway.PayReasons(ctx)
	if err != nil {
		return nil, gatewayError(err)
	}
	return doc, nil
}

func (b *beneficiary) List(ctx context.Context, query PageQuery) (BeneficiaryPage, error) {
	query = ClampPage(query.Page, query.Size)

	total, err := b.repo.CountByMember(ctx, b.merchantID)
	if err != nil {
		return BeneficiaryPage{}, databaseError(err)
	}

	if total == 0 {
		return BeneficiaryPage{Message: MsgNoBeneficiaries, Beneficiaries: []model.Beneficiary{}}, nil
	}

	beneficiaries, err := b.repo.FindByMember(ctx, b.merchantID, query.Size, query.Offset())
	if err != nil {
		return BeneficiaryPage{}, databaseError(err)
	}

	return BeneficiaryPage{
		Message:       MsgBeneficiariesFetched,
		Beneficiaries: beneficiaries,
		TotalPages:    query.TotalPages(total),
		TotalElements: total,
	}, nil
}

func (b *beneficiary) register(ctx context.Context, cmd RegisterBeneficiaryCommand) (gateway.BeneficiaryResponse, error) {
	resp, err := b.gateway.RegisterBeneficiary(ctx, gateway.RegisterBeneficiaryRequest{
		AccountNumber: cmd.AccountNumber,
		IFSC:          cmd.IFSC,
		Name:          cmd.Name,
		Email:         cmd.Email,
		Phone:         cmd.Mobile,
		PAN:           cmd.PAN,
		Aadhaar:       cmd.Aadhaar,
		Address:       cmd.Address,
		BeneType:      cmd.BeneType,
		Latitude:      cmd.Latitude,
		Longitude:     cmd.Longitude,
	})
	if err != nil {
		b.logger.Error("Gateway beneficiary registration failed",
			zap.String("accountNumber", cmd.AccountNumber),
			zap.Error(err))
		return gateway.BeneficiaryResponse{}, gatewayError(err)
	}

	return resp, nil
}

func (b *beneficiary) toModel(cmd RegisterBeneficiaryCommand, beneficiaryID string) *model.Beneficiary {
	now := time.Now()
	return &model.Beneficiary{
		MemberID:             b.merchantID,
		BeneficiaryID:        beneficiaryID,
		BeneType:             cmd.BeneType,
		AccountNumber:        cmd.AccountNumber,
		IFSC:                 cmd.IFSC,
		Name:                 cmd.Name,
		Email:                cmd.Email,
		Mobile:               cmd.Mobile,
		PAN:                  cmd.PAN,
		Aadhaar:              cmd.Aadhaar,
		BankName:             cmd.BankName,
		Address:              cmd.Address,
		Latitude:             cmd.Latitude,
		Longitude:            cmd.Longitude,
		AgreementSigned:      true,
		VerificationComplete: true,
		Status:               true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}
