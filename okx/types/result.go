package types

import "fmt"

type resultKind int

const (
	resultSuccess resultKind = iota
	resultFailure
	resultAPIError
)

// QueryResult 查询结果
// 三种互斥的变体：成功（账户列表）、传输/解码失败（error）、业务错误（code/msg）
// 调用方通过 IsSuccess/IsAPIError 判断，不存在错误字段混入成功结构的情况
type QueryResult struct {
	kind     resultKind
	err      error
	code     string
	msg      string
	accounts []BalanceAccount
}

// Success 构造成功结果
func Success(accounts []BalanceAccount) QueryResult {
	return QueryResult{kind: resultSuccess, accounts: accounts}
}

// Failure 构造传输层/解码层失败结果
func Failure(err error) QueryResult {
	return QueryResult{kind: resultFailure, err: err}
}

// APIError 构造业务错误结果（code != "0"）
func APIError(code, msg string) QueryResult {
	return QueryResult{kind: resultAPIError, code: code, msg: msg}
}

// IsSuccess 是否成功
func (r QueryResult) IsSuccess() bool {
	return r.kind == resultSuccess
}

// IsAPIError 是否业务错误
func (r QueryResult) IsAPIError() bool {
	return r.kind == resultAPIError
}

// Err 返回失败原因
// 成功时返回 nil，业务错误会包装为 error 方便统一打日志
func (r QueryResult) Err() error {
	switch r.kind {
	case resultFailure:
		return r.err
	case resultAPIError:
		return fmt.Errorf("API 错误 (代码: %s): %s", r.code, r.msg)
	default:
		return nil
	}
}

// Code 业务错误码（仅业务错误变体有效）
func (r QueryResult) Code() string {
	return r.code
}

// Msg 业务错误信息（仅业务错误变体有效）
func (r QueryResult) Msg() string {
	return r.msg
}

// Accounts 账户列表（仅成功变体有效，其他变体返回 nil）
func (r QueryResult) Accounts() []BalanceAccount {
	if r.kind != resultSuccess {
		return nil
	}
	return r.accounts
}
