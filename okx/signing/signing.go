package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"time"

	"github.com/betbot/okx-balance/okx/types"
)

// TimestampFormat OKX 要求的时间戳格式：ISO 8601 UTC，毫秒精度，以 Z 结尾
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// Timestamp 生成请求时间戳
// 时间由调用方注入（生产环境传 time.Now()），方便测试时固定时间
// 时间戳必须每次请求重新生成，超过服务端时钟偏差窗口（约30秒）会被拒绝
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

// Prehash 构建待签名字符串
// 按 OKX 文档顺序拼接：timestamp + method + requestPath + body，无分隔符
// method 统一转大写（小写是调用方笔误，这里纠正而不是拒绝）
// 查询参数必须包含在 requestPath 中，GET 请求的 body 为空字符串
func Prehash(timestamp, method, requestPath, body string) string {
	return timestamp + strings.ToUpper(method) + requestPath + body
}

// Sign 构建 OKX HMAC 签名
// 使用 HMAC-SHA256，密钥为 secret 的 UTF-8 字节，对原始摘要做标准 base64 编码
// 纯函数：相同输入永远产生相同签名，无任何状态
func Sign(secret, timestamp, method, requestPath, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(Prehash(timestamp, method, requestPath, body)))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Headers 构建认证请求头
// 根据 OKX 文档要求的头部信息：
// - OK-ACCESS-KEY: API 密钥
// - OK-ACCESS-SIGN: 签名
// - OK-ACCESS-TIMESTAMP: 时间戳
// - OK-ACCESS-PASSPHRASE: 密码短语
func Headers(creds types.Credentials, timestamp, method, requestPath, body string) types.AuthHeaders {
	return types.AuthHeaders{
		APIKey:      creds.APIKey,
		Signature:   Sign(creds.SecretKey, timestamp, method, requestPath, body),
		Timestamp:   timestamp,
		Passphrase:  creds.Passphrase,
		ContentType: "application/json",
	}
}
