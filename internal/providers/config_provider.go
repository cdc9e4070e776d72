package providers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"cpd/internal/structures"

	"github.com/spf13/viper"
)

func setConfigDefaults() {
	viper.SetDefault("webServer.host", "0.0.0.0")
	viper.SetDefault("webServer.port", 8090)
	viper.SetDefault("store.driver", structures.StoreDriverFile)
	viper.SetDefault("store.compress", true)
	viper.SetDefault("store.redis.prefix", "cpd")
	viper.SetDefault("library.maxItems", 100)
	viper.SetDefault("library.retainItems", 50)
	viper.SetDefault("notifications.audienceMax", 50)
	viper.SetDefault("notifications.adminMax", 20)
	viper.SetDefault("notifications.maxAge", 30*24*time.Hour)
	viper.SetDefault("revenue.rate", 2.5)
	viper.SetDefault("revenue.maxAge", 365*24*time.Hour)
	viper.SetDefault("revenue.window", 30*24*time.Hour)
	viper.SetDefault("retention.interval", time.Hour)
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")
	setConfigDefaults()

	viper.BindEnv("logger.level", "CPD_LOG_LEVEL")
	viper.BindEnv("store.driver", "CPD_STORE_DRIVER")
	viper.BindEnv("store.dir", "CPD_STORE_DIR")
	viper.BindEnv("store.redis.addr", "CPD_REDIS_ADDR")
	viper.BindEnv("store.redis.password", "CPD_REDIS_PASSWORD")
	viper.BindEnv("retention.interval", "CPD_CLEANUP_INTERVAL")
	viper.BindEnv("revenue.rate", "CPD_MONETIZATION_RATE")
	viper.BindEnv("cache.enabled", "CPD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "CPD_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "ContentPublicationDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
