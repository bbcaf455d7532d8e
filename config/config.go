package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	AI       AI
	Storage  Storage
	Log      Log
}

type Server struct {
	Port               string
	Mode               string // gin mode: debug, release, test
	CORSAllowedOrigins []string
	MaxUploadSize      int64 // bytes
}

type Database struct {
	Driver   string // postgres, mysql, sqlite
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string // sqlite file path
}

// AI holds the oracle settings. Provider "openai" talks to any
// OpenAI-compatible endpoint (Qwen via DashScope by default).
type AI struct {
	Provider     string
	QwenAPIKey   string
	QwenModel    string
	QwenBaseURL  string
	GeminiAPIKey string
	GeminiModel  string
	Timeout      time.Duration
	RateLimit    float64 // requests per second, 0 disables throttling
}

type Storage struct {
	Type           string // local, minio
	LocalPath      string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

type Log struct {
	Level string
	File  string
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("MAX_UPLOAD_SIZE", 10*1024*1024)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_PATH", "studynest.db")

	viper.SetDefault("AI_PROVIDER", "openai")
	viper.SetDefault("QWEN_MODEL", "qwen-plus")
	viper.SetDefault("QWEN_BASE_URL", "https://dashscope.aliyuncs.com/compatible-mode/v1")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("AI_TIMEOUT", "60s")
	viper.SetDefault("AI_RATE_LIMIT", 2.0)

	viper.SetDefault("STORAGE_TYPE", "local")
	viper.SetDefault("STORAGE_LOCAL_PATH", "uploads")
	viper.SetDefault("MINIO_BUCKET", "studynest")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.Mode = viper.GetString("GIN_MODE")
	config.Server.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	config.Server.MaxUploadSize = viper.GetInt64("MAX_UPLOAD_SIZE")

	config.Database.Driver = strings.ToLower(viper.GetString("DATABASE_DRIVER"))
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.Path = viper.GetString("DATABASE_PATH")

	config.AI.Provider = strings.ToLower(viper.GetString("AI_PROVIDER"))
	config.AI.QwenAPIKey = viper.GetString("QWEN_API_KEY")
	config.AI.QwenModel = viper.GetString("QWEN_MODEL")
	config.AI.QwenBaseURL = viper.GetString("QWEN_BASE_URL")
	config.AI.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	config.AI.GeminiModel = viper.GetString("GEMINI_MODEL")
	config.AI.Timeout = viper.GetDuration("AI_TIMEOUT")
	config.AI.RateLimit = viper.GetFloat64("AI_RATE_LIMIT")

	config.Storage.Type = strings.ToLower(viper.GetString("STORAGE_TYPE"))
	config.Storage.LocalPath = viper.GetString("STORAGE_LOCAL_PATH")
	config.Storage.MinioEndpoint = viper.GetString("MINIO_ENDPOINT")
	config.Storage.MinioAccessKey = viper.GetString("MINIO_ACCESS_KEY")
	config.Storage.MinioSecretKey = viper.GetString("MINIO_SECRET_KEY")
	config.Storage.MinioBucket = viper.GetString("MINIO_BUCKET")
	config.Storage.MinioUseSSL = viper.GetBool("MINIO_USE_SSL")

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.File = viper.GetString("LOG_FILE")

	// Secrets stay out of the startup log.
	log.Info().
		Str("port", config.Server.Port).
		Str("dbDriver", config.Database.Driver).
		Str("aiProvider", config.AI.Provider).
		Str("storage", config.Storage.Type).
		Bool("aiKeyConfigured", config.AI.QwenAPIKey != "" || config.AI.GeminiAPIKey != "").
		Msg("Config loaded")
	return &config, nil
}

// AIConfigured reports whether the selected provider has credentials.
func (c *Config) AIConfigured() bool {
	if c.AI.Provider == "gemini" {
		return c.AI.GeminiAPIKey != ""
	}
	return c.AI.QwenAPIKey != ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
