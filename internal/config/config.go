package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// EnvPrefix 環境變數覆寫的前綴
const EnvPrefix = "LEDGER_"

// Config 帳本服務設定
type Config struct {
	Log             LogConfig     `yaml:"log"`
	GRPC            ServerConfig  `yaml:"grpc"`
	HTTP            ServerConfig  `yaml:"http"`
	Audit           AuditConfig   `yaml:"audit"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// Seed 啟動時建立的帳戶
	Seed []SeedAccount `yaml:"seed"`
}

type LogConfig struct {
	// Level: debug / info / warn / error
	Level string `yaml:"level"`
	// Format: text / json
	Format string `yaml:"format"`
}

type ServerConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

type AuditConfig struct {
	// Output: 空字串不輸出；stdout / stderr；其他值視為檔案路徑
	Output string `yaml:"output"`
	// Buffer: 大於 0 時在背景輸出，不佔用帳本臨界區
	Buffer int `yaml:"buffer"`
}

type SeedAccount struct {
	Number  string `yaml:"number"`
	Holder  string `yaml:"holder"`
	Balance string `yaml:"balance"`
}

// Default 預設配置
func Default() Config {
	return Config{
		Log:             LogConfig{Level: "info", Format: "text"},
		GRPC:            ServerConfig{Enabled: true, Addr: ":50051"},
		HTTP:            ServerConfig{Enabled: true, Addr: ":8080"},
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load 載入設定
//
// 順序: 預設值 → yaml 檔 → .env 檔 → LEDGER_* 環境變數，最後驗證。
//
// 參數:
//
//	path: yaml 檔路徑，空字串表示不讀檔
//	envFiles: .env 檔案，不存在時略過
//
// 回傳:
//
//	Config: 設定
//	error: 讀檔、解析或驗證失敗
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	// 1. yaml
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// 2. .env，已存在的環境變數優先
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", file, err)
		}
	}

	// 3. 環境變數覆寫
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}
	setBool := func(key string, dst *bool) error {
		v, ok := os.LookupEnv(EnvPrefix + key)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = b
		return nil
	}

	setString("LOG_LEVEL", &c.Log.Level)
	setString("LOG_FORMAT", &c.Log.Format)
	setString("GRPC_ADDR", &c.GRPC.Addr)
	setString("HTTP_ADDR", &c.HTTP.Addr)
	setString("AUDIT_OUTPUT", &c.Audit.Output)
	if err := setBool("GRPC_ENABLED", &c.GRPC.Enabled); err != nil {
		return err
	}
	if err := setBool("HTTP_ENABLED", &c.HTTP.Enabled); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvPrefix + "AUDIT_BUFFER"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sAUDIT_BUFFER: %w", EnvPrefix, err)
		}
		c.Audit.Buffer = n
	}
	if v, ok := os.LookupEnv(EnvPrefix + "SHUTDOWN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sSHUTDOWN_TIMEOUT: %w", EnvPrefix, err)
		}
		c.ShutdownTimeout = d
	}
	return nil
}

// Validate 檢查設定
func (c *Config) Validate() error {
	var errs []error
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	if c.GRPC.Enabled && c.GRPC.Addr == "" {
		errs = append(errs, errors.New("grpc.addr is required when grpc is enabled"))
	}
	if c.HTTP.Enabled && c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http.addr is required when http is enabled"))
	}
	if c.Audit.Buffer < 0 {
		errs = append(errs, errors.New("audit.buffer must not be negative"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown_timeout must be positive"))
	}

	seen := make(map[string]bool, len(c.Seed))
	for i, seed := range c.Seed {
		if strings.TrimSpace(seed.Number) == "" || strings.TrimSpace(seed.Holder) == "" {
			errs = append(errs, fmt.Errorf("seed[%d]: number and holder are required", i))
			continue
		}
		if seen[seed.Number] {
			errs = append(errs, fmt.Errorf("seed[%d]: account %s listed twice", i, seed.Number))
		}
		seen[seed.Number] = true
		if seed.Balance != "" {
			if _, err := decimal.NewFromString(seed.Balance); err != nil {
				errs = append(errs, fmt.Errorf("seed[%d]: invalid balance %q", i, seed.Balance))
			}
		}
	}
	return errors.Join(errs...)
}
