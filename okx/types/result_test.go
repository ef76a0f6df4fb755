package types

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// TestQueryResultVariants 测试三种结果变体互斥且访问器行为正确
func TestQueryResultVariants(t *testing.T) {
	success := Success([]BalanceAccount{{TotalEq: "100"}})
	if !success.IsSuccess() || success.IsAPIError() {
		t.Error("成功变体判定错误")
	}
	if success.Err() != nil {
		t.Errorf("成功变体 Err() 应为 nil，实际 %v", success.Err())
	}
	if len(success.Accounts()) != 1 {
		t.Error("成功变体应返回账户列表")
	}

	failure := Failure(errors.New("timeout"))
	if failure.IsSuccess() || failure.IsAPIError() {
		t.Error("失败变体判定错误")
	}
	if failure.Err() == nil || !strings.Contains(failure.Err().Error(), "timeout") {
		t.Errorf("失败变体应携带原始错误，实际 %v", failure.Err())
	}
	if failure.Accounts() != nil {
		t.Error("失败变体不应返回账户列表")
	}

	apiErr := APIError("50111", "Invalid OK-ACCESS-KEY")
	if apiErr.IsSuccess() || !apiErr.IsAPIError() {
		t.Error("业务错误变体判定错误")
	}
	if apiErr.Code() != "50111" || apiErr.Msg() != "Invalid OK-ACCESS-KEY" {
		t.Errorf("业务错误变体字段错误: %q %q", apiErr.Code(), apiErr.Msg())
	}
	if err := apiErr.Err(); err == nil || !strings.Contains(err.Error(), "50111") {
		t.Errorf("业务错误变体 Err() 应包含错误码，实际 %v", err)
	}
}

// TestCashBalanceParsing 测试余额解析，非法值回退为 0
func TestCashBalanceParsing(t *testing.T) {
	d := BalanceDetail{CashBal: "1.25"}
	if !d.CashBalance().Equal(decimal.RequireFromString("1.25")) {
		t.Errorf("余额解析错误: %s", d.CashBalance())
	}

	bad := BalanceDetail{CashBal: "oops"}
	if !bad.CashBalance().IsZero() {
		t.Errorf("非法余额应回退为 0，实际 %s", bad.CashBalance())
	}

	empty := BalanceDetail{}
	if !empty.CashBalance().IsZero() {
		t.Errorf("空余额应回退为 0，实际 %s", empty.CashBalance())
	}
}
