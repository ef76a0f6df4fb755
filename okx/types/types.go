package types

import (
	"github.com/shopspring/decimal"
)

// Credentials OKX API 凭据
// 从环境变量或配置文件加载后不再修改，也不会被持久化
type Credentials struct {
	APIKey     string
	SecretKey  string
	Passphrase string
}

// Complete 检查凭据是否完整（三个字段都非空）
func (c Credentials) Complete() bool {
	return c.APIKey != "" && c.SecretKey != "" && c.Passphrase != ""
}

// AuthHeaders 认证请求头
// 由凭据 + 签名确定性生成，时间戳每次请求都不同，因此不做缓存
type AuthHeaders struct {
	APIKey      string
	Signature   string
	Timestamp   string
	Passphrase  string
	ContentType string
}

// Map 转换为 HTTP 请求头映射
func (h AuthHeaders) Map() map[string]string {
	return map[string]string{
		"OK-ACCESS-KEY":        h.APIKey,
		"OK-ACCESS-SIGN":       h.Signature,
		"OK-ACCESS-TIMESTAMP":  h.Timestamp,
		"OK-ACCESS-PASSPHRASE": h.Passphrase,
		"Content-Type":         h.ContentType,
	}
}

// BalanceDetail 单币种余额明细
type BalanceDetail struct {
	Ccy       string `json:"ccy"`
	CashBal   string `json:"cashBal"`
	AvailBal  string `json:"availBal"`
	FrozenBal string `json:"frozenBal"`
	Eq        string `json:"eq"`
	EqUsd     string `json:"eqUsd"`
}

// CashBalance 解析总余额，解析失败视为 0
func (d BalanceDetail) CashBalance() decimal.Decimal {
	v, err := decimal.NewFromString(d.CashBal)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// BalanceAccount 账户余额（包含各币种明细）
type BalanceAccount struct {
	TotalEq    string          `json:"totalEq"`
	UpdateTime string          `json:"uTime"`
	Details    []BalanceDetail `json:"details"`
}

// BalanceResponse 余额接口响应
// code 为 "0" 表示成功，其他值表示业务错误，错误信息在 msg 中
type BalanceResponse struct {
	Code string           `json:"code"`
	Msg  string           `json:"msg"`
	Data []BalanceAccount `json:"data"`
}
