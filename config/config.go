package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shortspro/internal/appdirs"

	"github.com/BurntSushi/toml"
)

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type AppConfig struct {
	Proxy       string `toml:"proxy"`
	FfmpegPath  string `toml:"ffmpeg_path"`
	YtdlpPath   string `toml:"ytdlp_path"`
	CookiesFile string `toml:"cookies_file"`
}

type SessionConfig struct {
	MaxAgeHours         int `toml:"max_age_hours"`
	SweepIntervalMinute int `toml:"sweep_interval_minutes"`
}

type RenderConfig struct {
	TranscodeTimeoutSecond  int   `toml:"transcode_timeout_seconds"`
	MaxConcurrentTranscodes int   `toml:"max_concurrent_transcodes"`
	MinOutputBytes          int64 `toml:"min_output_bytes"`
	FragmentRetries         int   `toml:"fragment_retries"`
}

type YoutubeConfig struct {
	ApiKey   string `toml:"api_key"`
	Endpoint string `toml:"endpoint"`
}

type Config struct {
	Server  ServerConfig  `toml:"server"`
	App     AppConfig     `toml:"app"`
	Session SessionConfig `toml:"session"`
	Render  RenderConfig  `toml:"render"`
	Youtube YoutubeConfig `toml:"youtube"`
}

var Conf = defaultConfig()

var resolveConfigPath = func() (string, error) {
	dirs, err := appdirs.Resolve()
	if err != nil {
		return "", err
	}
	return dirs.ConfigFile, nil
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8888,
		},
		App: AppConfig{
			FfmpegPath: "ffmpeg",
			YtdlpPath:  "yt-dlp",
		},
		Session: SessionConfig{
			MaxAgeHours:         24,
			SweepIntervalMinute: 30,
		},
		Render: RenderConfig{
			TranscodeTimeoutSecond:  300,
			MaxConcurrentTranscodes: 2,
			MinOutputBytes:          1024,
			FragmentRetries:         10,
		},
		Youtube: YoutubeConfig{
			Endpoint: "https://www.googleapis.com/youtube/v3",
		},
	}
}

// LoadOrCreateConfig reads the TOML config file, writing a default one first
// when it does not exist. Returns whether a new file was created.
func LoadOrCreateConfig() (bool, error) {
	configPath, err := resolveConfigPath()
	if err != nil {
		return false, err
	}

	if _, err = os.Stat(configPath); os.IsNotExist(err) {
		Conf = defaultConfig()
		if err = SaveConfig(); err != nil {
			return false, err
		}
		return true, nil
	} else if err != nil {
		return false, err
	}

	if _, err = toml.DecodeFile(configPath, &Conf); err != nil {
		return false, fmt.Errorf("failed to decode config file %s: %w", configPath, err)
	}
	applyDefaults(&Conf)
	return false, nil
}

// SaveConfig writes the current config back to disk, creating parent
// directories as needed.
func SaveConfig() error {
	configPath, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	file, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(Conf)
}

// CheckConfig validates values the pipeline cannot run without.
func CheckConfig() error {
	if Conf.Server.Port <= 0 || Conf.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", Conf.Server.Port)
	}
	if strings.TrimSpace(Conf.Youtube.ApiKey) == "" {
		return fmt.Errorf("youtube.api_key is required, set it in the config file")
	}
	return nil
}

// Zero values coming back from a hand-edited file fall back to defaults so a
// sparse config stays usable.
func applyDefaults(c *Config) {
	def := defaultConfig()
	if c.Server.Host == "" {
		c.Server.Host = def.Server.Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = def.Server.Port
	}
	if c.App.FfmpegPath == "" {
		c.App.FfmpegPath = def.App.FfmpegPath
	}
	if c.App.YtdlpPath == "" {
		c.App.YtdlpPath = def.App.YtdlpPath
	}
	if c.Session.MaxAgeHours <= 0 {
		c.Session.MaxAgeHours = def.Session.MaxAgeHours
	}
	if c.Session.SweepIntervalMinute <= 0 {
		c.Session.SweepIntervalMinute = def.Session.SweepIntervalMinute
	}
	if c.Render.TranscodeTimeoutSecond <= 0 {
		c.Render.TranscodeTimeoutSecond = def.Render.TranscodeTimeoutSecond
	}
	if c.Render.MaxConcurrentTranscodes <= 0 {
		c.Render.MaxConcurrentTranscodes = def.Render.MaxConcurrentTranscodes
	}
	if c.Render.MinOutputBytes <= 0 {
		c.Render.MinOutputBytes = def.Render.MinOutputBytes
	}
	if c.Render.FragmentRetries <= 0 {
		c.Render.FragmentRetries = def.Render.FragmentRetries
	}
	if c.Youtube.Endpoint == "" {
		c.Youtube.Endpoint = def.Youtube.Endpoint
	}
}
