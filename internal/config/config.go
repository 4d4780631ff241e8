package config

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort    string `mapstructure:"SERVER_PORT"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	KeyPrefix     string `mapstructure:"KEY_PREFIX"`
	KafkaBrokers  string `mapstructure:"KAFKA_BROKERS"` // 逗號分隔，空字串表示不發事件
	KafkaTopic    string `mapstructure:"KAFKA_TOPIC"`
	DbName        string `mapstructure:"POSTGRES_DB"` // 空字串表示用內嵌種子資料
	DbHost        string `mapstructure:"POSTGRES_HOST"`
	DbPort        string `mapstructure:"POSTGRES_PORT"`
	DbUser        string `mapstructure:"POSTGRES_USER"`
	DbPas         string `mapstructure:"POSTGRES_PASSWORD"`
	LoginDelayMS  int    `mapstructure:"LOGIN_DELAY_MS"`
	SnapshotTTLHr int    `mapstructure:"SNAPSHOT_TTL_HR"` // 0表示快照不過期
}

func (c *Config) LoginDelay() time.Duration {
	return time.Duration(c.LoginDelayMS) * time.Millisecond
}

func (c *Config) SnapshotTTL() time.Duration {
	return time.Duration(c.SnapshotTTLHr) * time.Hour
}

var (
	mu      sync.RWMutex
	current *Config
)

// Load 讀取.env並開始watch
// 環境變數優先於檔案，檔案不存在不算錯誤
func Load(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn().Err(err).Str("path", path).Msg("config file not loaded, fallback to env/defaults")
		}
	}

	cf := &Config{}
	if err := viper.Unmarshal(cf); err != nil {
		return nil, err
	}

	mu.Lock()
	current = cf
	mu.Unlock()

	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		reloaded := &Config{}
		if err := viper.Unmarshal(reloaded); err != nil {
			log.Error().Err(err).Msg("failed to reload config file")
			return
		}
		mu.Lock()
		current = reloaded
		mu.Unlock()
		log.Info().Str("file", e.Name).Msg("config reloaded")
	})

	return cf, nil
}

// Get 取最近一次載入的config，Load之前呼叫會拿到nil
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("KEY_PREFIX", "stylish")
	viper.SetDefault("KAFKA_TOPIC", "stylish.store.events")
	viper.SetDefault("LOGIN_DELAY_MS", 1000)
	viper.SetDefault("SNAPSHOT_TTL_HR", 0)
}
