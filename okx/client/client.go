package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/betbot/okx-balance/okx/signing"
	"github.com/betbot/okx-balance/okx/types"
)

const (
	// DefaultBaseURL OKX 生产环境地址
	DefaultBaseURL = "https://www.okx.com"

	// balancePath 账户余额接口路径
	balancePath = "/api/v5/account/balance"

	// defaultTimeout 单次请求超时上限，超时即失败，不重试
	defaultTimeout = 30 * time.Second
)

// Client OKX REST 客户端
// 凭据在构造时显式注入，签名和请求过程中不读取任何环境变量
type Client struct {
	creds   types.Credentials
	rest    *resty.Client
	sandbox bool
	now     func() time.Time
	log     *logrus.Entry
}

// Option 客户端配置选项
type Option func(*Client)

// WithBaseURL 覆盖基础 URL（测试或私有网关场景）
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.rest.SetBaseURL(strings.TrimSuffix(baseURL, "/"))
	}
}

// WithSandbox 启用模拟盘模式
// OKX 模拟盘使用生产地址 + x-simulated-trading: 1 请求头
func WithSandbox(sandbox bool) Option {
	return func(c *Client) {
		c.sandbox = sandbox
	}
}

// WithTimeout 覆盖请求超时
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.rest.SetTimeout(timeout)
	}
}

// WithClock 注入时钟（测试用，固定时间戳以验证签名）
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// New 创建 OKX 客户端
func New(creds types.Credentials, opts ...Option) *Client {
	// resty 会自动从环境变量读取代理配置（HTTP_PROXY, HTTPS_PROXY）
	rest := resty.New().
		SetBaseURL(DefaultBaseURL).
		SetTimeout(defaultTimeout)

	c := &Client{
		creds: creds,
		rest:  rest,
		now:   time.Now,
		log:   logrus.WithField("module", "okx-client"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetAccountBalance 查询账户余额
// ccy 为空时查询所有币种，非空时只查询指定币种
// 查询参数拼进 requestPath 参与签名，放进 body 会导致服务端返回认证错误
func (c *Client) GetAccountBalance(ctx context.Context, ccy string) types.QueryResult {
	requestPath := balancePath
	if ccy != "" {
		requestPath += "?ccy=" + url.QueryEscape(ccy)
	}

	// 时间戳每次请求重新生成，复用旧时间戳会超出服务端时钟偏差窗口
	timestamp := signing.Timestamp(c.now())
	headers := signing.Headers(c.creds, timestamp, http.MethodGet, requestPath, "")

	log := c.log.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"path":       requestPath,
	})
	log.Debug("查询账户余额")

	req := c.rest.R().
		SetContext(ctx).
		SetHeaders(headers.Map())
	if c.sandbox {
		req.SetHeader("x-simulated-trading", "1")
	}

	resp, err := req.Get(requestPath)
	if err != nil {
		log.WithError(err).Warn("请求失败")
		return types.Failure(errors.Wrap(err, "请求失败"))
	}
	if resp.IsError() {
		log.WithField("status", resp.StatusCode()).Warn("HTTP 状态异常")
		return types.Failure(errors.Errorf("http 非 2xx: %s: %s", resp.Status(), resp.Body()))
	}

	var out types.BalanceResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		log.WithError(err).Warn("响应解析失败")
		return types.Failure(errors.Wrap(err, "JSON 解析失败"))
	}

	if out.Code != "0" {
		log.WithFields(logrus.Fields{"code": out.Code, "msg": out.Msg}).Warn("接口返回业务错误")
		return types.APIError(out.Code, out.Msg)
	}

	return types.Success(out.Data)
}
