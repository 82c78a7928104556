package gateway

import "time"

type Config struct {
	BaseURL         string        `mapstructure:"base_url"`
	BeneficiaryPath string        `mapstructure:"beneficiary_path"`
	TransferPath    string        `mapstructure:"transfer_path"`
	BalancePath     string        `mapstructure:"balance_path"`
	MerchantID      string        `mapstructure:"merchant_id"`
	MerchantKey     string        `mapstructure:"merchant_key"`
	RechargeKey     string        `mapstructure:"recharge_key"`
	Timeout         time.Duration `mapstructure:"timeout"`
}
