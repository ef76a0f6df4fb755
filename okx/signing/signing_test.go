package signing

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/betbot/okx-balance/okx/types"
)

// 官方文档示例数据（文档未给出期望签名值，因此只做确定性校验）
const (
	exampleTimestamp = "2020-12-08T09:08:57.715Z"
	examplePath      = "/api/v5/account/balance"
	exampleSecret    = "22582BD0CFF14C41EDBF1AB98506286D"
)

// TestSignDeterministic 测试签名的确定性：相同输入两次必须产生完全相同的结果
func TestSignDeterministic(t *testing.T) {
	first := Sign(exampleSecret, exampleTimestamp, "GET", examplePath, "")
	second := Sign(exampleSecret, exampleTimestamp, "GET", examplePath, "")

	if first == "" {
		t.Fatal("签名不应为空")
	}
	if first != second {
		t.Errorf("相同输入应产生相同签名，第一次 %q，第二次 %q", first, second)
	}

	// 签名必须是合法的标准 base64，且为 SHA-256 摘要长度（32字节）
	raw, err := base64.StdEncoding.DecodeString(first)
	if err != nil {
		t.Fatalf("签名应为合法的标准 base64: %v", err)
	}
	if len(raw) != 32 {
		t.Errorf("原始摘要应为 32 字节，实际 %d 字节", len(raw))
	}
}

// TestSignPrehashOrder 测试待签名字符串的拼接顺序和内容
func TestSignPrehashOrder(t *testing.T) {
	got := Prehash(exampleTimestamp, "GET", examplePath, "")
	want := "2020-12-08T09:08:57.715ZGET/api/v5/account/balance"
	if got != want {
		t.Errorf("prehash 拼接错误，期望 %q，实际 %q", want, got)
	}
}

// TestSignMethodNormalization 测试小写方法名被纠正为大写后签名
func TestSignMethodNormalization(t *testing.T) {
	upper := Sign(exampleSecret, exampleTimestamp, "GET", examplePath, "")
	lower := Sign(exampleSecret, exampleTimestamp, "get", examplePath, "")
	if upper != lower {
		t.Errorf("小写方法名应与大写产生相同签名，大写 %q，小写 %q", upper, lower)
	}
}

// TestSignInputSensitivity 测试任一输入变化都会改变签名
func TestSignInputSensitivity(t *testing.T) {
	base := Sign(exampleSecret, exampleTimestamp, "GET", examplePath, "")

	cases := []struct {
		name      string
		timestamp string
		method    string
		path      string
		body      string
	}{
		{"时间戳变化", "2020-12-08T09:08:57.716Z", "GET", examplePath, ""},
		{"方法变化", exampleTimestamp, "POST", examplePath, ""},
		{"路径变化", exampleTimestamp, "GET", examplePath + "?ccy=BTC", ""},
		{"请求体变化", exampleTimestamp, "GET", examplePath, "{}"},
	}

	for _, tc := range cases {
		got := Sign(exampleSecret, tc.timestamp, tc.method, tc.path, tc.body)
		if got == base {
			t.Errorf("%s 后签名应当不同，实际仍为 %q", tc.name, got)
		}
	}
}

// TestSignQueryParamsInPath 测试查询参数包含在路径中参与签名
func TestSignQueryParamsInPath(t *testing.T) {
	bare := Sign(exampleSecret, exampleTimestamp, "GET", examplePath, "")
	withCcy := Sign(exampleSecret, exampleTimestamp, "GET", examplePath+"?ccy=BTC", "")
	if bare == withCcy {
		t.Error("带查询参数的路径应产生不同的签名")
	}
}

// TestTimestampFormat 测试时间戳格式：ISO 8601 UTC，毫秒精度，以 Z 结尾
func TestTimestampFormat(t *testing.T) {
	at := time.Date(2020, 12, 8, 9, 8, 57, 715_000_000, time.UTC)
	got := Timestamp(at)
	if got != exampleTimestamp {
		t.Errorf("时间戳格式错误，期望 %q，实际 %q", exampleTimestamp, got)
	}

	// 非 UTC 时区输入必须先转换为 UTC
	loc := time.FixedZone("UTC+8", 8*3600)
	local := Timestamp(at.In(loc))
	if local != exampleTimestamp {
		t.Errorf("非 UTC 输入应转换为 UTC，期望 %q，实际 %q", exampleTimestamp, local)
	}

	// 毫秒精度固定为三位
	whole := Timestamp(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	if whole != "2021-01-01T00:00:00.000Z" {
		t.Errorf("整秒时间也应保留三位毫秒，实际 %q", whole)
	}
}

// TestHeaders 测试认证请求头组装
func TestHeaders(t *testing.T) {
	creds := types.Credentials{
		APIKey:     "test-api-key",
		SecretKey:  exampleSecret,
		Passphrase: "test-passphrase",
	}

	headers := Headers(creds, exampleTimestamp, "GET", examplePath, "")

	if headers.APIKey != creds.APIKey {
		t.Errorf("APIKey 错误: %q", headers.APIKey)
	}
	if headers.Passphrase != creds.Passphrase {
		t.Errorf("Passphrase 错误: %q", headers.Passphrase)
	}
	if headers.Timestamp != exampleTimestamp {
		t.Errorf("Timestamp 错误: %q", headers.Timestamp)
	}
	if want := Sign(exampleSecret, exampleTimestamp, "GET", examplePath, ""); headers.Signature != want {
		t.Errorf("Signature 错误，期望 %q，实际 %q", want, headers.Signature)
	}
	if headers.ContentType != "application/json" {
		t.Errorf("ContentType 错误: %q", headers.ContentType)
	}

	m := headers.Map()
	for _, key := range []string{"OK-ACCESS-KEY", "OK-ACCESS-SIGN", "OK-ACCESS-TIMESTAMP", "OK-ACCESS-PASSPHRASE", "Content-Type"} {
		if m[key] == "" {
			t.Errorf("请求头 %s 缺失", key)
		}
	}
}
