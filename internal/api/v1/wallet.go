package v1

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) WalletBalance(c *fiber.Ctx) error {
	wallet, err := h.wallet.Get(c.UserContext())
	if err != nil {
		return err
	}

	return h.success(c, msgWalletFetched, wallet)
}

func (h *Handler) SyncBalance(c *fiber.Ctx) error {
	updated, err := h.wallet.Sync(c.UserContext())
	if err != nil {
		return err
	}

	message := msgBalanceSynced
	if !updated {
		message = msgBalanceNotSynced
	}

	return h.success(c, message, BalanceSyncResponse{Updated: updated})
}
