package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, etc.)
// - default: Values common across all environments (backend endpoint, timezone, timeout, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Backend BackendConfig
	Booking BookingConfig
	Refresh RefreshConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Shanghai"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"28800"` // 8*60*60
}

type BackendConfig struct {
	BaseURL     string        `envconfig:"BACKEND_BASE_URL" default:"https://cgyy.xiaorankeji.com/index.php"`
	VenueIDs    []int64       `envconfig:"BACKEND_VENUE_IDS" default:"10001,10029"`
	Timeout     time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`
	UserAgent   string        `envconfig:"BACKEND_USER_AGENT" default:"Mozilla/5.0"`
	Referer     string        `envconfig:"BACKEND_REFERER" default:"https://cgyy.xiaorankeji.com/h5/index.html"`
	OrderStates []string      `envconfig:"BACKEND_ORDER_STATES" default:"用户预约成功,待管理员审核"`
	// upper bound on concurrent venue-detail fetches
	FetchWorkers int `envconfig:"BACKEND_FETCH_WORKERS" default:"4"`
}

type BookingConfig struct {
	TimeZone string `envconfig:"BOOKING_TIMEZONE" default:"Asia/Shanghai"`
	// bookable dates run from today+LeadDays to today+LastDay inclusive
	LeadDays int `envconfig:"BOOKING_LEAD_DAYS" default:"4"`
	LastDay  int `envconfig:"BOOKING_LAST_DAY" default:"7"`
}

type RefreshConfig struct {
	// zero disables the periodic venue refresh
	VenueInterval time.Duration `envconfig:"REFRESH_VENUE_INTERVAL" default:"30m"`
}

func (c BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid booking timezone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Booking.LeadDays > cfg.Booking.LastDay {
		return Config{}, fmt.Errorf("BOOKING_LEAD_DAYS (%d) is after BOOKING_LAST_DAY (%d)", cfg.Booking.LeadDays, cfg.Booking.LastDay)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Shanghai",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 28800,
		},
		Backend: BackendConfig{
			BaseURL:      "http://127.0.0.1:0/index.php",
			VenueIDs:     []int64{10001, 10029},
			Timeout:      2 * time.Second,
			UserAgent:    "Mozilla/5.0",
			Referer:      "https://cgyy.xiaorankeji.com/h5/index.html",
			OrderStates:  []string{"用户预约成功", "待管理员审核"},
			FetchWorkers: 2,
		},
		Booking: BookingConfig{
			TimeZone: "Asia/Shanghai",
			LeadDays: 4,
			LastDay:  7,
		},
	}
}
