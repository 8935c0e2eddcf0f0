package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voxpage/voxpage/internal/config"
	"github.com/voxpage/voxpage/pkg/voxpage"
)

// Exit codes for granular error handling
const (
	ExitSuccess      = 0
	ExitNetworkError = 1
	ExitProcessError = 2
	ExitInvalidInput = 3
	ExitConfigError  = 4
	ExitFileIOError  = 5
	ExitPartialError = 6 // some URLs failed, some succeeded
)

var (
	cfgFile           string
	outputFile        string
	outputFormat      string
	browserFlag       string
	browserAgent      string
	javascript        bool
	noJS              bool
	timeout           int
	separator         string
	nullSeparator     bool
	userAgent         string
	includeMetadata   bool
	verbose           bool
	quiet             bool
	file              string
	continueOnError   bool
	noFollowRedirects bool
	delay             float64
	extractBackend    string
	useCookies        bool
)

const version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:   "voxpage [urls...]",
	Short: "Turn web articles into speech-ready text",
	Long: `voxpage extracts the readable article from a web page and prepares it
for narration: boilerplate stripped, symbols spelled out, text split into
synthesis-sized chunks, with word count and duration estimates.`,
	Version:       version,
	RunE:          run,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if exitErr, ok := err.(*exitErr); ok {
			os.Exit(exitErr.code)
		}
		os.Exit(ExitInvalidInput)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/voxpage/config.toml)")

	// Input/Output flags
	rootCmd.Flags().StringVarP(&file, "file", "f", "", "read URLs from file (one per line)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output to file or directory (default: stdout)")
	rootCmd.Flags().StringVar(&outputFormat, "format", "text", "output format (text|json)")
	rootCmd.Flags().StringVar(&separator, "separator", "---", "output separator for multiple URLs")
	rootCmd.Flags().BoolVar(&nullSeparator, "null-separator", false, "use null byte separator (for xargs -0)")

	// Browser integration flags
	rootCmd.Flags().StringVarP(&browserFlag, "browser", "b", "", "browser for cookie extraction (auto|chrome|firefox|safari)")
	rootCmd.Flags().BoolVar(&useCookies, "cookies", false, "reuse logged-in browser sessions")

	// Rendering flags
	rootCmd.Flags().BoolVar(&javascript, "javascript", false, "force JavaScript rendering")
	rootCmd.Flags().BoolVar(&noJS, "no-js", false, "disable JavaScript rendering")
	rootCmd.Flags().IntVar(&timeout, "timeout", 30, "request timeout in seconds")

	// Content flags
	rootCmd.Flags().BoolVar(&includeMetadata, "include-metadata", false, "include page metadata in output")
	rootCmd.Flags().StringVar(&userAgent, "user-agent", "", "custom user agent string")
	rootCmd.Flags().StringVar(&browserAgent, "browser-agent", "", "browser agent type (auto|chrome|firefox|safari)")
	rootCmd.Flags().StringVarP(&extractBackend, "backend", "B", "", "extraction backend (heuristic|readability)")

	// Pipeline flags
	rootCmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "continue processing remaining URLs on error")
	rootCmd.Flags().BoolVar(&noFollowRedirects, "no-follow-redirects", false, "disable following HTTP redirects")
	rootCmd.Flags().Float64Var(&delay, "delay", 0, "delay in seconds between requests (rate limiting)")

	// System flags
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress all non-content output")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		return
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			if !quiet {
				fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			}
			return
		}
		configHome = filepath.Join(home, ".config")
	}

	configDir := filepath.Join(configHome, "voxpage")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("toml")
	viper.SetConfigName("config")

	if mkdirErr := os.MkdirAll(configDir, 0755); mkdirErr != nil && !os.IsExist(mkdirErr) {
		if !quiet {
			fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", mkdirErr)
		}
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("VOXPAGE")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Auto-create config on first run
			configPath := filepath.Join(configDir, "config.toml")
			cfg := config.Default()
			if createErr := cfg.CreateExampleConfig(configPath); createErr == nil {
				if !quiet {
					fmt.Fprintf(os.Stderr, "Created config file: %s\n", configPath)
				}
				viper.ReadInConfig()
			}
		}
	}
}

func setupLogging(cfg *config.Config) {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		level = parsed
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	if quiet {
		level = zerolog.Disabled
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return exitError(ExitConfigError, "failed to load config: %v", err)
	}

	setupLogging(cfg)

	// Fold CLI flags into the config; explicit flags win
	if cmd.Flags().Changed("timeout") || cfg.Network.Timeout == 0 {
		cfg.Network.Timeout = timeout
	}
	if userAgent != "" {
		cfg.Network.UserAgent = userAgent
	}
	if browserAgent != "" {
		cfg.Network.BrowserAgent = browserAgent
	}
	if noFollowRedirects {
		cfg.Network.FollowRedirects = false
	}
	if !cmd.Flags().Changed("delay") && cfg.Network.Delay > 0 {
		delay = float64(cfg.Network.Delay)
	}
	if !cmd.Flags().Changed("format") && cfg.Output.DefaultFormat != "" {
		outputFormat = cfg.Output.DefaultFormat
	}
	if !cmd.Flags().Changed("include-metadata") {
		includeMetadata = cfg.Output.IncludeMetadata
	}
	if useCookies {
		cfg.Browser.Cookies.Enabled = true
	}
	if browserFlag != "" {
		cfg.Browser.Default = browserFlag
	}
	if extractBackend == "" {
		extractBackend = cfg.Extraction.Backend
	}

	if outputFormat != "text" && outputFormat != "json" {
		return exitError(ExitInvalidInput, "unknown output format: %s (available: text, json)", outputFormat)
	}

	urls, err := collectURLs(args)
	if err != nil {
		return exitError(ExitInvalidInput, "failed to collect URLs: %v", err)
	}
	if len(urls) == 0 {
		return exitError(ExitInvalidInput, "no URLs provided")
	}

	client := voxpage.New(cfg)

	var useJS *bool
	if javascript {
		t := true
		useJS = &t
	} else if noJS {
		f := false
		useJS = &f
	}

	// Set up output writer
	var output io.Writer = os.Stdout
	var outputDir string
	if outputFile != "" {
		info, statErr := os.Stat(outputFile)
		if (statErr == nil && info.IsDir()) || strings.HasSuffix(outputFile, "/") {
			// Directory mode: each URL gets its own file
			outputDir = outputFile
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return exitError(ExitFileIOError, "failed to create output directory: %v", err)
			}
		} else {
			f, err := os.Create(outputFile)
			if err != nil {
				return exitError(ExitFileIOError, "failed to create output file %s: %v", outputFile, err)
			}
			defer f.Close()
			output = f
		}
	}

	hadError := false
	successCount := 0

	for i, url := range urls {
		log.Debug().Int("index", i+1).Int("total", len(urls)).Str("url", url).Msg("processing")

		rendered, err := processURL(client, url, useJS, cfg)
		if err != nil {
			hadError = true
			if !quiet {
				fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", url, err)
			}
			if !continueOnError {
				errStr := err.Error()
				if strings.Contains(errStr, "fetch failed") || strings.Contains(errStr, "HTTP error") || strings.Contains(errStr, "dial") {
					return exitError(ExitNetworkError, "")
				}
				return exitError(ExitProcessError, "")
			}
			continue
		}

		successCount++

		if outputDir != "" {
			filename := urlToFilename(url, outputFormat)
			filePath := filepath.Join(outputDir, filename)
			if err := os.WriteFile(filePath, []byte(rendered), 0644); err != nil {
				if !quiet {
					fmt.Fprintf(os.Stderr, "Error writing file %s: %v\n", filePath, err)
				}
				hadError = true
				if !continueOnError {
					return exitError(ExitFileIOError, "")
				}
				continue
			}
			log.Debug().Str("path", filePath).Msg("saved")
		} else {
			fmt.Fprint(output, rendered)
			if len(urls) > 1 && i < len(urls)-1 {
				if nullSeparator {
					fmt.Fprint(output, "\x00")
				} else {
					fmt.Fprintf(output, "\n%s\n", separator)
				}
			}
		}

		// Rate limiting delay between requests
		if delay > 0 && i < len(urls)-1 {
			time.Sleep(time.Duration(delay*1000) * time.Millisecond)
		}
	}

	if hadError && successCount > 0 {
		return &exitErr{code: ExitPartialError}
	} else if hadError {
		return &exitErr{code: ExitNetworkError}
	}

	return nil
}

func processURL(client *voxpage.Client, url string, useJS *bool, cfg *config.Config) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Network.Timeout)*time.Second)
	defer cancel()

	result, err := client.Extract(ctx, url, voxpage.ExtractOptions{
		Backend: extractBackend,
		UseJS:   useJS,
	})
	if err != nil {
		return "", err
	}

	if outputFormat == "json" {
		return renderJSON(result)
	}
	return renderText(result), nil
}

// jsonOutput is the wire shape of one extraction in JSON mode.
type jsonOutput struct {
	Title            string            `json:"title"`
	Content          string            `json:"content"`
	Chunks           []string          `json:"chunks"`
	WordCount        int               `json:"wordCount"`
	EstimatedMinutes float64           `json:"estimatedMinutes"`
	ReadMinutes      float64           `json:"readMinutes"`
	ExtractionMethod string            `json:"extractionMethod"`
	Backend          string            `json:"backend"`
	SourceURL        string            `json:"sourceUrl"`
	UsedJavaScript   bool              `json:"usedJavascript"`
	Metadata         map[string]string `json:"metadata,omitempty"`
}

func renderJSON(result *voxpage.Result) (string, error) {
	out := jsonOutput{
		Title:            result.Article.Title,
		Content:          result.Article.Content,
		Chunks:           result.Chunks,
		WordCount:        result.Article.WordCount,
		EstimatedMinutes: result.Article.EstimatedMinutes,
		ReadMinutes:      result.ReadMinutes,
		ExtractionMethod: result.Article.Method,
		Backend:          result.Backend,
		SourceURL:        result.Article.SourceURL,
		UsedJavaScript:   result.UsedJavaScript,
	}
	if includeMetadata {
		out.Metadata = result.Metadata
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data) + "\n", nil
}

func renderText(result *voxpage.Result) string {
	var sb strings.Builder

	sb.WriteString(result.Article.Title)
	sb.WriteString("\n\n")

	if includeMetadata {
		sb.WriteString(fmt.Sprintf("Words: %d | Narration: %.1f min | Read: %.1f min | Method: %s\n",
			result.Article.WordCount,
			result.Article.EstimatedMinutes,
			result.ReadMinutes,
			result.Article.Method,
		))
		for key, value := range result.Metadata {
			sb.WriteString(fmt.Sprintf("%s: %s\n", key, value))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(result.Article.Content)
	sb.WriteString("\n")
	return sb.String()
}

func collectURLs(args []string) ([]string, error) {
	var urls []string
	urls = append(urls, args...)

	if file != "" {
		fileURLs, err := readURLsFromFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read URLs from file %s: %w", file, err)
		}
		urls = append(urls, fileURLs...)
	}

	if len(args) == 0 && file == "" {
		stdinURLs, err := readURLsFromStdin()
		if err != nil {
			return nil, fmt.Errorf("failed to read URLs from stdin: %w", err)
		}
		urls = append(urls, stdinURLs...)
	}

	var cleanURLs []string
	for _, url := range urls {
		url = strings.TrimSpace(url)
		if url != "" && isValidURL(url) {
			cleanURLs = append(cleanURLs, url)
		}
	}
	return cleanURLs, nil
}

func readURLsFromFile(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			urls = append(urls, line)
		}
	}
	return urls, scanner.Err()
}

func readURLsFromStdin() ([]string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, err
	}
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, nil
	}

	var urls []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			urls = append(urls, line)
		}
	}
	return urls, scanner.Err()
}

func isValidURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// urlToFilename converts a URL to a safe filename
func urlToFilename(rawURL string, format string) string {
	name := strings.TrimPrefix(rawURL, "https://")
	name = strings.TrimPrefix(name, "http://")

	replacer := strings.NewReplacer(
		"/", "_",
		"?", "_",
		"&", "_",
		"=", "_",
		":", "_",
		"#", "_",
		"%", "_",
	)
	name = replacer.Replace(name)
	name = strings.TrimRight(name, "_")

	ext := ".txt"
	if format == "json" {
		ext = ".json"
	}

	if len(name) > 200 {
		name = name[:200]
	}
	return name + ext
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string {
	return e.msg
}

func exitError(code int, format string, args ...interface{}) *exitErr {
	msg := fmt.Sprintf(format, args...)
	if msg != "" && !quiet {
		fmt.Fprintf(os.Stderr, "%s\n", msg)
	}
	return &exitErr{code: code, msg: msg}
}
