package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type LogRotate struct {
	Enable     bool
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Log struct {
	Level  string
	JSON   bool
	Rotate LogRotate
}

type JWT struct {
	Secret            string
	Issuer            string
	AccessTokenTTLMin int
}

type Mongo struct {
	URI               string
	Database          string
	Username          string
	Password          string
	ConnectTimeoutSec int
}

type Redis struct {
	Enable   bool   `mapstructure:"enable"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Stripe struct {
	SecretKey string
	Currency  string
}

type CORS struct {
	AllowOrigins []string
}

// Features collects the behavior switches where the upstream server
// variants disagreed with each other.
type Features struct {
	// RequireAuthOnPaymentHistory guards GET /payments/:email. One
	// upstream variant checked the token, another left the route open.
	RequireAuthOnPaymentHistory bool
	// RecommendedCacheTTLSec bounds staleness of the cached
	// recommended-campaigns response. 0 disables the cache.
	RecommendedCacheTTLSec int
}

type Config struct {
	App      App
	Log      Log
	JWT      JWT
	Mongo    Mongo
	Redis    Redis `mapstructure:"redis"`
	Stripe   Stripe
	CORS     CORS
	Features Features
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// The file is optional: env vars alone can configure a deployment.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && fileExists(path) {
			log.Fatalf("read config: %v", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	return &c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "petconnect")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 3000)
	v.SetDefault("app.http.readtimeoutsec", 5)
	v.SetDefault("app.http.writetimeoutsec", 10)
	v.SetDefault("app.http.idletimeoutsec", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.rotate.filename", "./logs/api.log")
	v.SetDefault("log.rotate.maxsizemb", 100)
	v.SetDefault("log.rotate.maxbackups", 7)
	v.SetDefault("log.rotate.maxagedays", 14)
	v.SetDefault("jwt.issuer", "petconnect")
	v.SetDefault("jwt.accesstokenttlmin", 60)
	v.SetDefault("mongo.database", "PetConnectDB")
	v.SetDefault("mongo.connecttimeoutsec", 10)
	v.SetDefault("stripe.currency", "usd")
	v.SetDefault("cors.alloworigins", []string{"*"})
	v.SetDefault("features.requireauthonpaymenthistory", true)
	v.SetDefault("features.recommendedcachettlsec", 30)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
