package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ==================== 配置结构 ====================

// Config 应用配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Razorpay RazorpayConfig `mapstructure:"razorpay"`
	Sweep    SweepConfig    `mapstructure:"sweep"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug | release
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// JWTConfig JWT 配置
type JWTConfig struct {
	Secret   string `mapstructure:"secret"`
	TTLHours int    `mapstructure:"ttl_hours"`
	Issuer   string `mapstructure:"issuer"`
}

// StorageConfig 文件存储配置
type StorageConfig struct {
	Provider  string `mapstructure:"provider"` // s3 | local
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	BasePath  string `mapstructure:"base_path"`
	LocalDir  string `mapstructure:"local_dir"`
	LocalURL  string `mapstructure:"local_url"`
}

// RazorpayConfig 支付网关配置
type RazorpayConfig struct {
	KeyID     string `mapstructure:"key_id"`
	KeySecret string `mapstructure:"key_secret"`
}

// SweepConfig 过期未支付订单清理配置
type SweepConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	MaxAgeHours int  `mapstructure:"max_age_hours"`
}

// AccessTokenTTL Token 有效期
func (c *JWTConfig) AccessTokenTTL() time.Duration {
	if c.TTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.TTLHours) * time.Hour
}

// ==================== 加载 ====================

// Load 读取配置文件并叠加环境变量
// 环境变量形如 VIVIDHANDS_DATABASE_DSN 覆盖 database.dsn
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	v.SetEnvPrefix("VIVIDHANDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 缺省值
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("jwt.ttl_hours", 24)
	v.SetDefault("jwt.issuer", "vividhands")
	v.SetDefault("storage.provider", "local")
	v.SetDefault("storage.base_path", "vividhands")
	v.SetDefault("storage.local_dir", "./uploads")
	v.SetDefault("storage.local_url", "/uploads")
	v.SetDefault("sweep.enabled", true)
	v.SetDefault("sweep.max_age_hours", 24)

	if err := v.ReadInConfig(); err != nil {
		// 允许纯环境变量启动
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
