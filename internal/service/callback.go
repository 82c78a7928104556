package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/Behyna/payout-services/internal/constants"
	"github.com/Behyna/payout-services/internal/repository"
	"github.com/Behyna/payout-services/pkg/gateway"
	"go.uber.org/zap"
)

type CallbackService interface {
	HandlePayout(ctx context.Context, cmd PayoutCallbackCommand) error
}

type callback struct {
	sendMoneyRepo repository.SendMoneyRepository
	logger        *zap.Logger
}

func NewCallbackService(sendMoneyRepo repository.SendMoneyRepository, logger *zap.Logger) CallbackService {
	return &callback{sendMoneyRepo: sendMoneyRepo, logger: logger}
}

// HandlePayout applies a gateway status notification to the matching send money
// record. Unknown order ids are ignored.
func (c *callback) HandlePayout(ctx context.Context, cmd PayoutCallbackCommand) error {
	data, err := decodeCallbackData(cmd.Data)
	if err != nil {
		c.logger.Error("Failed to parse payout callback",
			zap.String("statusCode", cmd.StatusCode),
			zap.Error(err))
		return NewServiceError(constants.ErrCodeInvalidRequestBody, err)
	}

	record, err := c.sendMoneyRepo.FindByOrderID(ctx, data.OrderID)
	if errors.Is(err, repository.ErrSendMoneyNotFound) {
		c.logger.Warn("Payout callback for unknown order", zap.String("orderID", data.OrderID))
		return nil
	}

	if err != nil {
		return databaseError(err)
	}

	record.Status = cmd.Status
	record.GatewayOrderID = data.GatewayOrderID
	record.GatewayID = data.GatewayID
	record.RRN = data.RRN
	record.OpeningBalance = parseDecimal(c.logger, "opening_bal", data.OpeningBalance)
	record.LockedAmount = parseDecimal(c.logger, "locked_amt", data.LockedAmount)
	record.ChargedAmount = parseDecimal(c.logger, "charged_amt", data.ChargedAmount)
	record.UpdatedAt = time.Now()

	if err := c.sendMoneyRepo.Update(ctx, record); err != nil {
		c.logger.Error("Failed to apply payout callback",
			zap.String("orderID", data.OrderID),
			zap.Error(err))
		return databaseError(err)
	}

	c.logger.Info("Payout callback applied",
		zap.String("orderID", data.OrderID),
		zap.String("status", cmd.Status))

	return nil
}

func decodeCallbackData(raw string) (gateway.TransferData, error) {
	var data gateway.TransferData

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return data, fmt.Errorf("unescape callback data: %w", err)
	}

	if err := json.Unmarshal([]byte(decoded), &data); err != nil {
		return data, fmt.Errorf("decode callback data: %w", err)
	}

	if data.OrderID == "" {
		return data, errors.New("callback data has no orderId")
	}

	return data, nil
}
