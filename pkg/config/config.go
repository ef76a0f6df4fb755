package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/betbot/okx-balance/okx/types"
)

// Config 应用配置
// 凭据在这里加载一次，之后显式传入客户端构造函数，签名逻辑内部不做环境变量查找
type Config struct {
	Credentials types.Credentials
	Sandbox     bool   // 是否使用模拟盘环境
	BaseURL     string // 基础 URL 覆盖（可选，为空时使用客户端默认值）
	LogLevel    string // 日志级别
	LogFile     string // 日志文件路径（可选）
}

// ConfigFile 配置文件结构（用于 YAML 解析）
// 只承载非敏感配置，凭据一律来自环境变量
type ConfigFile struct {
	BaseURL  string `yaml:"base_url"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Load 加载配置
// 环境变量：
// - OKX_API_KEY: API密钥
// - OKX_SECRET_KEY: 秘钥
// - OKX_PASSPHRASE: 密码短语
// - OKX_SANDBOX: 是否使用模拟盘环境 (true/false)，默认 false
// filePath 非空时额外加载 YAML 配置文件（优先级：环境变量 > 配置文件 > 默认值）
func Load(filePath string) (*Config, error) {
	var configFile *ConfigFile
	if filePath != "" {
		var err error
		configFile, err = loadConfigFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("加载配置文件失败 %s: %w", filePath, err)
		}
	}

	config := &Config{
		Credentials: types.Credentials{
			APIKey:     os.Getenv("OKX_API_KEY"),
			SecretKey:  os.Getenv("OKX_SECRET_KEY"),
			Passphrase: os.Getenv("OKX_PASSPHRASE"),
		},
		Sandbox:  parseBoolEnv("OKX_SANDBOX", false),
		LogLevel: "info",
	}

	if configFile != nil {
		if configFile.BaseURL != "" {
			config.BaseURL = configFile.BaseURL
		}
		if configFile.LogLevel != "" {
			config.LogLevel = configFile.LogLevel
		}
		if configFile.LogFile != "" {
			config.LogFile = configFile.LogFile
		}
	}

	// 环境变量覆盖配置文件
	if v := os.Getenv("OKX_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}

	return config, nil
}

// loadConfigFile 读取并解析 YAML 配置文件
func loadConfigFile(filePath string) (*ConfigFile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cf ConfigFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// parseBoolEnv 解析布尔环境变量，未设置时返回默认值
func parseBoolEnv(key string, defaultValue bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	return strings.EqualFold(v, "true")
}
