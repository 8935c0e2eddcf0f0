package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Extraction ExtractionConfig `toml:"extraction"`
	Speech     SpeechConfig     `toml:"speech"`
	Network    NetworkConfig    `toml:"network"`
	Browser    BrowserConfig    `toml:"browser"`
	Output     OutputConfig     `toml:"output"`
	Logging    LoggingConfig    `toml:"logging"`
}

type ExtractionConfig struct {
	Backend            string  `toml:"backend"`
	MinContentLength   int     `toml:"min_content_length"`
	EarlyExitLength    int     `toml:"early_exit_length"`
	MinValidLength     int     `toml:"min_valid_length"`
	StopWordRatio      float64 `toml:"stop_word_ratio"`
	MinParagraphLength int     `toml:"min_paragraph_length"`
	TitleMinLength     int     `toml:"title_min_length"`
	TitleMaxLength     int     `toml:"title_max_length"`
	EnableJavaScript   string  `toml:"enable_javascript"`
	JSTimeout          int     `toml:"js_timeout"`
	WaitForSelector    string  `toml:"wait_for_selector"`
	SkipCookieBanners  bool    `toml:"skip_cookie_banners"`
	BannerTimeout      int     `toml:"banner_timeout"`
}

type SpeechConfig struct {
	NarrationWPM int `toml:"narration_wpm"`
	ReadingWPM   int `toml:"reading_wpm"`
	MaxChunkSize int `toml:"max_chunk_size"`
}

type NetworkConfig struct {
	Timeout         int    `toml:"timeout"`
	UserAgent       string `toml:"user_agent"`
	BrowserAgent    string `toml:"browser_agent"`
	FollowRedirects bool   `toml:"follow_redirects"`
	Delay           int    `toml:"delay"`
}

type BrowserConfig struct {
	Default string               `toml:"default"`
	Cookies BrowserCookiesConfig `toml:"cookies"`
}

type BrowserCookiesConfig struct {
	Enabled bool     `toml:"enabled"`
	Domains []string `toml:"domains"`
	Exclude []string `toml:"exclude"`
}

type OutputConfig struct {
	DefaultFormat   string `toml:"default_format"`
	IncludeMetadata bool   `toml:"include_metadata"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

func Default() *Config {
	return &Config{
		Extraction: ExtractionConfig{
			Backend:            "heuristic",
			MinContentLength:   500,
			EarlyExitLength:    1000,
			MinValidLength:     200,
			StopWordRatio:      0.7,
			MinParagraphLength: 30,
			TitleMinLength:     5,
			TitleMaxLength:     200,
			EnableJavaScript:   "auto",
			JSTimeout:          15,
			WaitForSelector:    "",
			SkipCookieBanners:  true,
			BannerTimeout:      5,
		},
		Speech: SpeechConfig{
			NarrationWPM: 180,
			ReadingWPM:   200,
			MaxChunkSize: 8000,
		},
		Network: NetworkConfig{
			Timeout:         30,
			UserAgent:       "",
			BrowserAgent:    "auto",
			FollowRedirects: true,
			Delay:           0,
		},
		Browser: BrowserConfig{
			Default: "auto",
			Cookies: BrowserCookiesConfig{
				Enabled: false,
				Domains: []string{"*"},
				Exclude: []string{},
			},
		},
		Output: OutputConfig{
			DefaultFormat:   "text",
			IncludeMetadata: false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return cfg, fmt.Errorf("error finding home directory: %w", err)
			}
			configHome = filepath.Join(home, ".config")
		}

		configDir := filepath.Join(configHome, "voxpage")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("toml")
		viper.SetConfigName("config")

		// Create config directory if it doesn't exist
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return cfg, fmt.Errorf("error creating config directory: %w", err)
		}
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("VOXPAGE")

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found is not an error, we'll use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return cfg, nil
}

func (c *Config) CreateExampleConfig(configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	exampleContent := `# voxpage configuration file

[extraction]
# Extraction backend
backend = "heuristic"      # heuristic, readability

# Candidate cascade thresholds
min_content_length = 500   # below this the paragraph fallback runs
early_exit_length = 1000   # stop scanning patterns once the best candidate passes this
min_valid_length = 200     # shortest text the content validator accepts
stop_word_ratio = 0.7      # reject text at or above this stop-word fraction
min_paragraph_length = 30  # shortest paragraph the fallback keeps

# Title bounds
title_min_length = 5
title_max_length = 200

# JavaScript rendering
enable_javascript = "auto" # auto, always, never
js_timeout = 15            # seconds to wait for JS execution
wait_for_selector = ""     # CSS selector to wait for (optional)

# Cookie banner handling
skip_cookie_banners = true
banner_timeout = 5         # seconds to wait for banner dismissal

[speech]
narration_wpm = 180        # words per minute for narration duration
reading_wpm = 200          # words per minute for the quick read estimate
max_chunk_size = 8000      # max characters per synthesis chunk (0 = no chunking)

[network]
timeout = 30               # seconds
user_agent = ""            # custom user agent (empty = rotate browser agents)
browser_agent = "auto"     # auto, chrome, firefox, safari
follow_redirects = true
delay = 0                  # seconds between requests (for multiple URLs)

[browser]
# Browser for session cookie extraction
default = "auto"           # auto, chrome, firefox, safari

[browser.cookies]
enabled = false            # reuse logged-in browser sessions for fetches
domains = ["*"]
exclude = []

[output]
default_format = "text"    # text, json
include_metadata = false

[logging]
level = "info"             # debug, info, warn, error
`

	return os.WriteFile(configPath, []byte(exampleContent), 0644)
}
