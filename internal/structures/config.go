package structures

import "time"

const (
	StoreDriverFile   = "file"
	StoreDriverMemory = "memory"
	StoreDriverRedis  = "redis"
)

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"uint"`
	Prefix   string `yaml:"prefix"`
}

type StoreConfig struct {
	Driver   string      `yaml:"driver" validate:"required|in:file,memory,redis"`
	Dir      string      `yaml:"dir" validate:"unixPath"`
	Compress bool        `yaml:"compress"`
	Redis    RedisConfig `yaml:"redis"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

// LibraryConfig bounds the content library. MaxItems is enforced on every
// write, RetainItems by the periodic cleanup.
type LibraryConfig struct {
	MaxItems    int `yaml:"maxItems" validate:"uint"`
	RetainItems int `yaml:"retainItems" validate:"uint"`
}

type NotificationsConfig struct {
	AudienceMax int           `yaml:"audienceMax" validate:"uint"`
	AdminMax    int           `yaml:"adminMax" validate:"uint"`
	MaxAge      time.Duration `yaml:"maxAge"`
}

type RevenueConfig struct {
	Rate   float64       `yaml:"rate" validate:"min:0"`
	MaxAge time.Duration `yaml:"maxAge"`
	Window time.Duration `yaml:"window"`
}

type PublicationConfig struct {
	ReferencePool []string `yaml:"referencePool"`
}

type RetentionConfig struct {
	Interval time.Duration `yaml:"interval" validate:"required|min:1"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName       string
	Debug         bool
	Path          string
	WebServer     Server              `yaml:"webServer"`
	Store         StoreConfig         `yaml:"store"`
	Logger        LoggerConfig        `yaml:"logger"`
	Library       LibraryConfig       `yaml:"library"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Revenue       RevenueConfig       `yaml:"revenue"`
	Publication   PublicationConfig   `yaml:"publication"`
	Retention     RetentionConfig     `yaml:"retention"`
	Cache         CacheConfig         `yaml:"cache"`
	Metrics       MetricsConfig       `yaml:"metrics"`
}
