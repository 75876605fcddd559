package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type (
	AppConfig struct {
		Name        string `mapstructure:"name"`
		Version     string `mapstructure:"version"`
		Port        int    `mapstructure:"port"`
		Environment string `mapstructure:"environment"`
		PathPrefix  string `mapstructure:"path_prefix"` // Optional, can be used to set a base path for the application
	}

	LoggerConfig struct {
		Level       string `mapstructure:"level"`
		Format      string `mapstructure:"format"`
		FilePath    string `mapstructure:"filepath"`
		MaxSize     int    `mapstructure:"max_size"`
		MaxAge      int    `mapstructure:"max_age"`
		MaxBackups  int    `mapstructure:"max_backups"`
		Compress    bool   `mapstructure:"compress"`
		LocalTime   bool   `mapstructure:"localTime"`
		Environment string
	}

	// JWTConfig holds the signing secret and token lifetime policy. The
	// secret is loaded once at startup and is read-only afterwards.
	JWTConfig struct {
		Secret        string        `mapstructure:"secret"`
		Lifetime      time.Duration `mapstructure:"lifetime"`
		RefreshWindow time.Duration `mapstructure:"refresh_window"`
	}

	MongoConfig struct {
		URI            string `mapstructure:"uri"`
		Database       string `mapstructure:"database"`
		ReplicaSet     string `mapstructure:"replicaSet"`
		AuthSource     string `mapstructure:"authSource"`
		Username       string `mapstructure:"username"`
		Password       string `mapstructure:"password"`
		ConnectTimeout int    `mapstructure:"connect_timeout"`
		MaxPoolSize    int    `mapstructure:"max_pool_size"`
		MinPoolSize    int    `mapstructure:"min_pool_size"`
		SocketTimeout  int    `mapstructure:"socket_timeout"`
	}

	RedisConfig struct {
		Enabled    bool   `mapstructure:"enabled"`
		Type       string `mapstructure:"type"` // NORMAL or SENTINEL
		Addrs      string `mapstructure:"addrs"`
		MasterName string `mapstructure:"master_name"`
		Password   string `mapstructure:"password"`
	}

	CacheConfig struct {
		Type       string `mapstructure:"type"` // LRU or FIFO
		MaxSize    int    `mapstructure:"max_size"`
		DefaultTTL int    `mapstructure:"default_ttl"` // seconds
	}

	MetricsConfig struct {
		Enabled bool   `mapstructure:"enabled"`
		Path    string `mapstructure:"path"`
	}

	CORSConfig struct {
		Enabled          bool     `mapstructure:"enabled"`
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	}
)

type Env struct {
	AppConfig     AppConfig     `mapstructure:"app"`
	LoggerConfig  LoggerConfig  `mapstructure:"logging"`
	JWTConfig     JWTConfig     `mapstructure:"jwt"`
	MongoConfig   MongoConfig   `mapstructure:"mongo"`
	RedisConfig   RedisConfig   `mapstructure:"redis"`
	CacheConfig   CacheConfig   `mapstructure:"cache"`
	MetricsConfig MetricsConfig `mapstructure:"metrics"`
	CORSConfig    CORSConfig    `mapstructure:"cors"`
}

var env Env
var envLoaded bool

func loadEnv() Env {
	// Set up viper to read the config.yaml file
	viper.SetConfigName("config")   // Config file name without extension
	viper.SetConfigType("yaml")     // Config file type
	viper.AddConfigPath("./config") // Look for the config file in the current directory

	/*
	   AutomaticEnv will check for an environment variable any time a viper.Get request is made.
	   It will apply the following rules.
	       It will check for an environment variable with a name matching the key uppercased and prefixed with the EnvPrefix if set.
	*/
	viper.AutomaticEnv()
	viper.SetEnvPrefix("env") // will be uppercased automatically
	viper.SetEnvKeyReplacer(
		strings.NewReplacer(".", "_"),
	) // this is useful e.g. want to use . in Get() calls, but environmental variables to use _ delimiters (e.g. app.port -> APP_PORT)

	err := viper.ReadInConfig() // Read the config file
	if err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	// The signing secret is normally supplied through the environment rather
	// than the yaml file. ENV_JWT_SECRET wins over jwt.secret.
	viper.BindEnv("jwt.secret", "ENV_JWT_SECRET", "JWT_SECRET")

	err = viper.Unmarshal(&env)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
	env.LoggerConfig.Environment = env.AppConfig.Environment // Set the logger environment from app config
	if env.AppConfig.Environment == "production" {
		env.LoggerConfig.Level = "info" // Default to info level in production
	}

	applyJWTDefaults(&env.JWTConfig)

	printStartupConfig(&env)

	return env
}

// applyJWTDefaults fills in lifetime policy defaults and refuses to start
// with a secret shorter than the HS256 recommended key size. Rotating the
// secret invalidates every outstanding token; there is no dual-key grace.
func applyJWTDefaults(cfg *JWTConfig) {
	if cfg.Lifetime <= 0 {
		cfg.Lifetime = time.Hour
	}
	if cfg.RefreshWindow <= 0 {
		cfg.RefreshWindow = 5 * time.Minute
	}
	if len(cfg.Secret) < 32 {
		log.Fatalf("jwt.secret must be at least 32 bytes for HS256, got %d", len(cfg.Secret))
	}
}

func GetEnv() *Env {
	if envLoaded {
		return &env
	}
	env = loadEnv()
	envLoaded = true
	return &env
}

func printStartupConfig(env *Env) {
	line := strings.Repeat("=", 40)
	fmt.Println(line)
	fmt.Println("🚀 Application Configuration")
	fmt.Println(line)

	fmt.Printf("%-15s: %s\n", "App Name", env.AppConfig.Name)
	fmt.Printf("%-15s: %s\n", "Version", env.AppConfig.Version)
	fmt.Printf("%-15s: %s\n", "Environment", env.AppConfig.Environment)
	fmt.Printf("%-15s: %d\n", "Port", env.AppConfig.Port)
	fmt.Printf("%-15s: %s\n", "Log Level", env.LoggerConfig.Level)
	fmt.Printf("%-15s: %s\n", "Token Lifetime", env.JWTConfig.Lifetime)

	fmt.Println(line)
}
