package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Session and mentor storage: "memory" or "mongo".
	StoreBackend string `mapstructure:"STORE_BACKEND"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`
	SeedMentors  bool   `mapstructure:"SEED_MENTORS"`

	// Booking drafts: "memory" or "redis".
	DraftBackend    string `mapstructure:"DRAFT_BACKEND"`
	DraftTTLMinutes int    `mapstructure:"DRAFT_TTL_MINUTES"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDraftDB  int    `mapstructure:"REDIS_DRAFT_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Task queue and reminders.
	QueueEnabled        bool   `mapstructure:"QUEUE_ENABLED"`
	ReminderLeadMinutes int    `mapstructure:"REMINDER_LEAD_MINUTES"`
	TimeZone            string `mapstructure:"TIME_ZONE"`

	// Push notifications. Empty disables FCM delivery.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
}

var AppConfig Config

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("STORE_BACKEND", "memory")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "skillbridge")
	v.SetDefault("SEED_MENTORS", true)
	v.SetDefault("DRAFT_BACKEND", "memory")
	v.SetDefault("DRAFT_TTL_MINUTES", 30)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DRAFT_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 1)
	v.SetDefault("QUEUE_ENABLED", false)
	v.SetDefault("REMINDER_LEAD_MINUTES", 60)
	v.SetDefault("TIME_ZONE", "Asia/Kolkata")
	v.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
}

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// DraftTTL is the lifetime of an idle booking draft.
func (c Config) DraftTTL() time.Duration {
	if c.DraftTTLMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.DraftTTLMinutes) * time.Minute
}

// ReminderLead is how long before a session its reminder fires.
func (c Config) ReminderLead() time.Duration {
	return time.Duration(c.ReminderLeadMinutes) * time.Minute
}

// Location resolves TIME_ZONE, falling back to UTC when it is unknown.
func (c Config) Location() *time.Location {
	if c.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		log.Printf("Unknown TIME_ZONE %q, using UTC", c.TimeZone)
		return time.UTC
	}
	return loc
}
