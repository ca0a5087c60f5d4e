package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var Cfg Config

type Config struct {
	// 服务配置
	ServiceName string `env:"SERVICE_NAME" envDefault:"hair-journey-companion"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // development, staging, production

	// 本地控制面配置（浏览器弹窗/按钮的替代品，默认只监听本机）
	ControlHost string `env:"CONTROL_HOST" envDefault:"127.0.0.1"`
	ControlPort string `env:"CONTROL_PORT" envDefault:"8787"`

	// WordPress 后端配置
	// nonce 由服务端页面配置下发，这里只做透传；缺失时打卡功能整体静默停用
	AjaxURL               string `env:"MYAVANA_AJAX_URL"`
	Nonce                 string `env:"MYAVANA_NONCE"`
	RequestTimeoutSeconds int    `env:"MYAVANA_REQUEST_TIMEOUT_SECONDS" envDefault:"10"`

	// 日界配置：完成/关闭两个 day-stamp 统一用该时区的 YYYY-MM-DD 计算与比较
	DayTimezone string `env:"DAY_TIMEZONE" envDefault:"UTC"`

	// 本地状态存储配置
	StateBackend  string `env:"STATE_BACKEND" envDefault:"file"` // file, redis
	StateFilePath string `env:"STATE_FILE_PATH" envDefault:"companion_state.json"`

	// Redis 配置（STATE_BACKEND=redis 时使用）
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"myavana"`

	// 奖励展示节奏配置
	ToastDurationMS     int `env:"TOAST_DURATION_MS" envDefault:"5000"`
	BadgeInitialDelayMS int `env:"BADGE_INITIAL_DELAY_MS" envDefault:"1500"`
	BadgeIntervalMS     int `env:"BADGE_INTERVAL_MS" envDefault:"2500"`
	BadgeDurationMS     int `env:"BADGE_DURATION_MS" envDefault:"4000"`

	// 遥测配置
	TelemetryEnabled bool   `env:"TELEMETRY_ENABLED" envDefault:"false"`
	OTLPEndpoint     string `env:"OTLP_ENDPOINT" envDefault:"localhost:4317"`
	ServiceVersion   string `env:"SERVICE_VERSION" envDefault:"dev"`

	// 日志配置
	LoggerLevel      string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat     string `env:"LOGGER_FORMAT" envDefault:"text"` // json, text
	LoggerOutputPath string `env:"LOGGER_OUTPUT_PATH" envDefault:"stdout"`
}

func init() {

	if err := godotenv.Load(); err != nil {
		log.Printf("WARN: Cannot load .env file: %v, using environment variables", err)
	}

	Cfg = Config{}
	if err := env.Parse(&Cfg); err != nil {
		log.Fatalf("Failed to parse environment variables: %v", err)
	}

	validateConfig()
}

func validateConfig() {
	if Cfg.AjaxURL == "" {
		log.Printf("WARN: MYAVANA_AJAX_URL is not set, check-in features will be disabled")
	}

	if Cfg.Nonce == "" {
		log.Printf("WARN: MYAVANA_NONCE is not set, check-in features will be disabled")
	}

	if Cfg.StateBackend != "file" && Cfg.StateBackend != "redis" {
		log.Fatalf("STATE_BACKEND must be 'file' or 'redis', got %q", Cfg.StateBackend)
	}

	if _, err := time.LoadLocation(Cfg.DayTimezone); err != nil {
		log.Fatalf("DAY_TIMEZONE %q is not a valid IANA timezone: %v", Cfg.DayTimezone, err)
	}
}

// GamificationEnabled 打卡功能是否可用；后端地址或 nonce 缺失时静默停用
func (c *Config) GamificationEnabled() bool {
	return c.AjaxURL != "" && c.Nonce != ""
}

// DayLocation 日界时区，validateConfig 已保证可解析
func (c *Config) DayLocation() *time.Location {
	loc, err := time.LoadLocation(c.DayTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
