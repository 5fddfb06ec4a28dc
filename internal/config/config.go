package config

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// 環境変数名
const (
	EnvHost                    = "APP_HOST"
	EnvPort                    = "APP_PORT"
	EnvLogLevel                = "LOG_LEVEL"
	EnvUnsupportedMethodStatus = "APP_UNSUPPORTED_METHOD_STATUS"
	EnvConfigFile              = "APP_CONFIG"
)

// デフォルト値
const (
	DefaultHost                    = "0.0.0.0"
	DefaultPort                    = "8000"
	DefaultLogLevel                = "INFO"
	DefaultUnsupportedMethodStatus = http.StatusNotImplemented
)

// ポート番号の有効範囲 (0 はエフェメラルポート)
const (
	MinPort = 0
	MaxPort = 65535
)

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string `yaml:"host"` // リッスンするホスト
	Port int    `yaml:"port"` // リッスンするポート番号

	// GET以外のメソッドに返すステータス (405 または 501)
	UnsupportedMethodStatus int `yaml:"unsupported_method_status"`
}

// LogConfig はログ出力の設定
type LogConfig struct {
	Level string `yaml:"level"` // ログレベル (DEBUG, INFO, WARN, ERROR)
}

// Overrides は環境変数より優先される明示的な指定
// nil のフィールドは未指定として扱う
type Overrides struct {
	Host       *string
	Port       *int
	ConfigFile string
}

// ConfigError は設定値が不正な場合のエラー
type ConfigError struct {
	Key   string // 設定キー (環境変数名など)
	Value string // 不正な値
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("設定値が不正です %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

var (
	// ErrNotInteger はポート番号が整数でない場合のエラー
	ErrNotInteger = errors.New("整数ではありません")
	// ErrOutOfRange はポート番号が範囲外の場合のエラー
	ErrOutOfRange = fmt.Errorf("%d から %d の範囲外です", MinPort, MaxPort)
)

// ResolveHost はバインドするホストを決定する
// 優先順位: override > APP_HOST > 0.0.0.0
// APP_HOST が空文字で設定されている場合は全インターフェースを意味する空文字を返す
func ResolveHost(override *string) string {
	if override != nil {
		return *override
	}
	return lookupEnvOrDefault(EnvHost, DefaultHost)
}

// ResolvePort はバインドするポート番号を決定する
// 優先順位: override > APP_PORT > 8000
// 整数への変換を先に行い、その後で範囲を検証する
func ResolvePort(override *int) (int, error) {
	if override != nil {
		return validatePort(EnvPort, *override)
	}
	return parsePort(EnvPort, lookupEnvOrDefault(EnvPort, DefaultPort))
}

// Load は設定を読み込む
// 優先順位: Overrides > 環境変数 > 設定ファイル > デフォルト値
func Load(opts Overrides) (*Config, error) {
	cfg := Default()

	path := opts.ConfigFile
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	// 環境変数で上書き
	if _, ok := os.LookupEnv(EnvHost); ok || opts.Host != nil {
		cfg.Server.Host = ResolveHost(opts.Host)
	}
	if _, ok := os.LookupEnv(EnvPort); ok || opts.Port != nil {
		port, err := ResolvePort(opts.Port)
		if err != nil {
			return nil, err
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvUnsupportedMethodStatus); ok {
		status, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, &ConfigError{Key: EnvUnsupportedMethodStatus, Value: v, Err: ErrNotInteger}
		}
		cfg.Server.UnsupportedMethodStatus = status
	}

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default はデフォルト設定を返す
func Default() *Config {
	port, _ := strconv.Atoi(DefaultPort)
	return &Config{
		Server: ServerConfig{
			Host:                    DefaultHost,
			Port:                    port,
			UnsupportedMethodStatus: DefaultUnsupportedMethodStatus,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// loadFile はYAMLの設定ファイルを読み込む
// ファイルに書かれていない項目は現在の値を維持する
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ConfigError{Key: EnvConfigFile, Value: path, Err: err}
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return &ConfigError{Key: EnvConfigFile, Value: path, Err: fmt.Errorf("YAMLの解析に失敗: %w", err)}
	}
	return nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if _, err := validatePort("server.port", c.Server.Port); err != nil {
		return err
	}

	switch c.Server.UnsupportedMethodStatus {
	case http.StatusMethodNotAllowed, http.StatusNotImplemented:
	default:
		return &ConfigError{
			Key:   "server.unsupported_method_status",
			Value: strconv.Itoa(c.Server.UnsupportedMethodStatus),
			Err:   errors.New("405 または 501 を指定してください"),
		}
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// parsePort は文字列のポート番号を整数に変換して検証する
func parsePort(key, value string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &ConfigError{Key: key, Value: value, Err: ErrNotInteger}
	}
	return validatePort(key, port)
}

// validatePort はポート番号の範囲を検証する
func validatePort(key string, port int) (int, error) {
	if port < MinPort || port > MaxPort {
		return 0, &ConfigError{Key: key, Value: strconv.Itoa(port), Err: ErrOutOfRange}
	}
	return port, nil
}

// lookupEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
// 空文字で設定されている場合は空文字を返す
func lookupEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
