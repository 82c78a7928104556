package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrBeneficiaryNotFound    = errors.New("BENEFICIARY_NOT_FOUND")
	ErrBatchNotFound          = errors.New("BATCH_NOT_FOUND")
	ErrSendMoneyNotFound      = errors.New("SEND_MONEY_NOT_FOUND")
	ErrWalletBalanceNotFound  = errors.New("WALLET_BALANCE_NOT_FOUND")
	ErrDuplicateTransactionID = errors.New("DUPLICATE_TRANSACTION_ID")
	ErrDuplicateOrderID       = errors.New("DUPLICATE_ORDER_ID")
	ErrNoRowsAffected         = errors.New("NO_ROWS_AFFECTED")
)

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
