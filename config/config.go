package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// ServerConfig contains all of the server settings defined in the TOML file
type ServerConfig struct {
	ListenAddrIP   string
	ListenAddrPort string
	WebDir         string // holds app.wasm and wasm_exec.js
	LogLevel       string
	LogOutput      string
	LogFile        string
	SiteConfig
	ContactConfig
}

// SiteConfig describes the site to browsers and the app manifest
type SiteConfig struct {
	Name        string
	ShortName   string
	Description string
	Version     string
}

// ContactConfig tunes the simulated contact form submission
type ContactConfig struct {
	SubmitDelay time.Duration
	BannerDelay time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("serverConfig.ServerAddr", "")
	v.SetDefault("serverConfig.ServerPort", "8000")
	v.SetDefault("serverConfig.WebDir", "web")
	v.SetDefault("site.Name", "Institute of Applied Modern Research")
	v.SetDefault("site.ShortName", "IAMR")
	v.SetDefault("site.Description", "Igniting potential. Engineering the future. IAMR is where innovation meets ambition.")
	v.SetDefault("site.Version", "")
	v.SetDefault("contact.SubmitDelay", "1500ms")
	v.SetDefault("contact.BannerDelay", "5s")
	v.SetDefault("logging.Level", "warn")
	v.SetDefault("logging.OutputPath", "stdout")
	v.SetDefault("logging.LogFileLocation", "iamr-site.log")
}

// LoadConfig reads siteConfig.toml from the given directories, in order.
// A missing file is not an error; the defaults are used instead.
func LoadConfig(paths ...string) (ServerConfig, error) {
	v := viper.New()
	setDefaults(v)
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("siteConfig")
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return ServerConfig{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg ServerConfig
	cfg.ListenAddrIP = v.GetString("serverConfig.ServerAddr")
	cfg.ListenAddrPort = v.GetString("serverConfig.ServerPort")
	cfg.WebDir = filepath.ToSlash(v.GetString("serverConfig.WebDir"))
	cfg.Name = v.GetString("site.Name")
	cfg.ShortName = v.GetString("site.ShortName")
	cfg.Description = v.GetString("site.Description")
	cfg.Version = v.GetString("site.Version")
	cfg.SubmitDelay = v.GetDuration("contact.SubmitDelay")
	cfg.BannerDelay = v.GetDuration("contact.BannerDelay")
	cfg.LogLevel = v.GetString("logging.Level")
	cfg.LogOutput = v.GetString("logging.OutputPath")
	cfg.LogFile = v.GetString("logging.LogFileLocation")

	if cfg.SubmitDelay <= 0 || cfg.BannerDelay <= 0 {
		return ServerConfig{}, fmt.Errorf("contact delays must be positive, got %v and %v", cfg.SubmitDelay, cfg.BannerDelay)
	}
	return cfg, nil
}

// SetupServer does the initial configuration
func SetupServer() (ServerConfig, *slog.Logger) {
	serverConfigLive, err := LoadConfig("config/", ".")
	if err != nil { // Handle errors reading the config file
		panic(fmt.Errorf("fatal error config file: %w", err))
	}
	logger := setupLogging(serverConfigLive)
	logger.Info("Base Logger is setup!")
	logger.Info("Config loaded",
		"addr", serverConfigLive.ListenAddrIP,
		"port", serverConfigLive.ListenAddrPort,
		"webDir", serverConfigLive.WebDir,
		"site", serverConfigLive.Name)
	return serverConfigLive, logger
}

func parseLevel(level string) slog.Level {
	switch level {
	case "Debug", "debug":
		return slog.LevelDebug
	case "Info", "info":
		return slog.LevelInfo
	case "Warn", "warn":
		return slog.LevelWarn
	case "Error", "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func setupLogging(cfg ServerConfig) *slog.Logger {
	var logWriter io.Writer
	if cfg.LogOutput == "file" {
		logPath, err := filepath.Abs(filepath.ToSlash(cfg.LogFile))
		if err != nil {
			fmt.Println("Unable to create log file path: ", err)
			logPath = "output.log"
		}
		logFile, err := os.Create(logPath)
		if err != nil {
			fmt.Println("Unable to create log file: ", err)
			logWriter = os.Stdout
		} else {
			logWriter = logFile
			fmt.Println("Logging to file: ", logPath)
		}
	} else {
		logWriter = os.Stdout
		fmt.Println("Will be logging to stdout...")
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}
	handler := slog.NewTextHandler(logWriter, opts)
	logger := slog.New(handler)
	return logger
}
