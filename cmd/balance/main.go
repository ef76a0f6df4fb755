package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/betbot/okx-balance/okx/balance"
	"github.com/betbot/okx-balance/okx/client"
	"github.com/betbot/okx-balance/pkg/config"
	"github.com/betbot/okx-balance/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "YAML 配置文件路径（可选）")
	flag.Parse()

	fmt.Println("🚀 OKX API v5 账户余额查询")
	fmt.Println(strings.Repeat("=", 60))

	// 先尝试读取 .env，没有就直接用进程环境变量
	if err := godotenv.Load(); err != nil {
		logrus.Debug("未找到 .env 文件，使用环境变量")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("加载配置失败: %v", err)
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.LogLevel,
		OutputFile: cfg.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
	}); err != nil {
		logrus.Fatalf("初始化日志失败: %v", err)
	}

	// 凭据不完整时打印配置指引后直接返回，不算进程错误
	if !cfg.Credentials.Complete() {
		printCredentialGuide()
		return
	}

	if cfg.Sandbox {
		fmt.Println("🔧 环境: 模拟盘")
	} else {
		fmt.Println("🔧 环境: 生产")
	}

	opts := []client.Option{client.WithSandbox(cfg.Sandbox)}
	if cfg.BaseURL != "" {
		opts = append(opts, client.WithBaseURL(cfg.BaseURL))
	}
	c := client.New(cfg.Credentials, opts...)

	ctx := context.Background()

	fmt.Println("📡 正在查询账户总余额...")
	balance.Print(c.GetAccountBalance(ctx, ""))

	// 可选：查询特定币种
	fmt.Print("\n🔍 输入要查询的特定币种(如BTC)，或按回车跳过: ")
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		ccy := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if ccy != "" {
			fmt.Printf("\n📡 正在查询%s余额...\n", ccy)
			balance.Print(c.GetAccountBalance(ctx, ccy))
		}
	}

	fmt.Println("\n✅ 查询完成！")
	fmt.Println("\n📖 更多API文档: https://www.okx.com/docs-v5/zh/")
}

// printCredentialGuide 打印凭据配置指引
func printCredentialGuide() {
	fmt.Println("❌ 缺少必要的环境变量！")
	fmt.Println("\n📝 请设置以下环境变量：")
	fmt.Println("export OKX_API_KEY='your_api_key'")
	fmt.Println("export OKX_SECRET_KEY='your_secret_key'")
	fmt.Println("export OKX_PASSPHRASE='your_passphrase'")
	fmt.Println("export OKX_SANDBOX='false'  # 可选，默认false")
	fmt.Println("\n💡 也可以在工作目录创建一个 .env 文件：")
	fmt.Println("OKX_API_KEY=your_api_key")
	fmt.Println("OKX_SECRET_KEY=your_secret_key")
	fmt.Println("OKX_PASSPHRASE=your_passphrase")
	fmt.Println("OKX_SANDBOX=false")
}
