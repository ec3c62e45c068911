package utils

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Source   SourceConfig
	Database DatabaseConfig
	Cloud    CloudConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Debug       bool
	LogPath     string
	Serve       bool
	TargetsPath string
}

type SourceConfig struct {
	Kind     string `validate:"required,oneof=csv postgres"`
	DataPath string `validate:"required_if=Kind csv"`
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type CloudConfig struct {
	FontPath    string  `validate:"required"`
	OutputDir   string  `validate:"required"`
	TopN        int     `validate:"min=1"`
	Width       int     `validate:"min=16"`
	Height      int     `validate:"min=16"`
	MaxFontSize float64 `validate:"gtfield=MinFontSize"`
	MinFontSize float64 `validate:"gt=0"`
	Background  string  `validate:"required"`
	Seed        int64
	StoreLimit  int `validate:"min=1"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "review-cloud")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SERVE", false)
	viper.SetDefault("REVIEW_SOURCE", "csv")
	viper.SetDefault("DATA_PATH", "./Data/movie_aisw.csv")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("FONT_PATH", "/usr/share/fonts/truetype/nanum/NanumGothic.ttf")
	viper.SetDefault("OUTPUT_DIR", "output/")
	viper.SetDefault("TOP_N", 50)
	viper.SetDefault("CLOUD_WIDTH", 400)
	viper.SetDefault("CLOUD_HEIGHT", 200)
	viper.SetDefault("CLOUD_MAX_FONT_SIZE", 60)
	viper.SetDefault("CLOUD_MIN_FONT_SIZE", 4)
	viper.SetDefault("CLOUD_BACKGROUND", "white")
	viper.SetDefault("CLOUD_SEED", 42)
	viper.SetDefault("CLOUD_STORE_LIMIT", 100)

	// .env is optional, the defaults reproduce the original analysis
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:        viper.GetString("APP_NAME"),
			Port:        viper.GetString("PORT"),
			Debug:       viper.GetBool("DEBUG"),
			LogPath:     viper.GetString("LOG_PATH"),
			Serve:       viper.GetBool("SERVE"),
			TargetsPath: viper.GetString("TARGETS_PATH"),
		},
		Source: SourceConfig{
			Kind:     viper.GetString("REVIEW_SOURCE"),
			DataPath: viper.GetString("DATA_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Cloud: CloudConfig{
			FontPath:    viper.GetString("FONT_PATH"),
			OutputDir:   viper.GetString("OUTPUT_DIR"),
			TopN:        viper.GetInt("TOP_N"),
			Width:       viper.GetInt("CLOUD_WIDTH"),
			Height:      viper.GetInt("CLOUD_HEIGHT"),
			MaxFontSize: viper.GetFloat64("CLOUD_MAX_FONT_SIZE"),
			MinFontSize: viper.GetFloat64("CLOUD_MIN_FONT_SIZE"),
			Background:  viper.GetString("CLOUD_BACKGROUND"),
			Seed:        viper.GetInt64("CLOUD_SEED"),
			StoreLimit:  viper.GetInt("CLOUD_STORE_LIMIT"),
		},
	}

	if errs := ValidateStruct(config); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", FormatValidationErrors(errs))
	}

	return config, nil
}
