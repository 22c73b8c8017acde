package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (intervals, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Booking BookingConfig
	Sweep   SweepConfig
	Notify  NotifyConfig
	Weather WeatherConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Hebron"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Hebron"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
}

// BookingConfig shapes the fixed daily slot template and the reservation
// policy. Slots are hourly; an OPEN_HOUR of 9 and a CLOSE_HOUR of 20 yield
// twelve slots, "9:00 AM" through "8:00 PM".
type BookingConfig struct {
	OpenHour    int `envconfig:"BOOKING_OPEN_HOUR" default:"9"`
	CloseHour   int `envconfig:"BOOKING_CLOSE_HOUR" default:"20"`
	HorizonDays int `envconfig:"BOOKING_HORIZON_DAYS" default:"7"`
	// When true a new request from a customer holding an active booking
	// replaces it; when false the request is rejected instead.
	ReplaceExisting bool `envconfig:"BOOKING_REPLACE_EXISTING" default:"true"`
}

type SweepConfig struct {
	ReminderInterval    time.Duration `envconfig:"SWEEP_REMINDER_INTERVAL" default:"5m"`
	ReminderWindow      time.Duration `envconfig:"SWEEP_REMINDER_WINDOW" default:"1h"`
	WaitingListInterval time.Duration `envconfig:"SWEEP_WAITING_LIST_INTERVAL" default:"30m"`
	WeatherInterval     time.Duration `envconfig:"SWEEP_WEATHER_INTERVAL" default:"6h"`
	WeatherHorizon      time.Duration `envconfig:"SWEEP_WEATHER_HORIZON" default:"24h"`
}

type NotifyConfig struct {
	Timeout  time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"10s"`
	SMTPHost string        `envconfig:"NOTIFY_SMTP_HOST" default:"localhost"`
	SMTPPort string        `envconfig:"NOTIFY_SMTP_PORT" default:"1025"`
	SMTPFrom string        `envconfig:"NOTIFY_SMTP_FROM" default:"no-reply@booking-engine.local"`
	// Operator inboxes for admin-facing notifications (new bookings, ratings).
	OperatorRecipients []string `envconfig:"NOTIFY_OPERATOR_RECIPIENTS" default:""`
}

type WeatherConfig struct {
	APIKey  string        `envconfig:"WEATHER_API_KEY" default:""`
	City    string        `envconfig:"WEATHER_CITY" default:"Nablus"`
	BaseURL string        `envconfig:"WEATHER_BASE_URL" default:"http://api.openweathermap.org/data/2.5/weather"`
	Timeout time.Duration `envconfig:"WEATHER_TIMEOUT" default:"10s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Hebron",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Hebron",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 10800,
		},
		Booking: BookingConfig{
			OpenHour:        9,
			CloseHour:       20,
			HorizonDays:     7,
			ReplaceExisting: true,
		},
		Sweep: SweepConfig{
			ReminderInterval:    5 * time.Minute,
			ReminderWindow:      time.Hour,
			WaitingListInterval: 30 * time.Minute,
			WeatherInterval:     6 * time.Hour,
			WeatherHorizon:      24 * time.Hour,
		},
		Notify: NotifyConfig{
			Timeout: 10 * time.Second,
		},
	}
}
