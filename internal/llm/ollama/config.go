package ollama

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the Ollama client.
type Config struct {
	BaseURL     string        // default http://localhost:11434
	Model       string        // e.g., "llama3.2"
	Temperature float32       // low values keep categorization consistent
	Timeout     time.Duration // http client timeout
	NumPredict  int           // response token cap
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("OLLAMA_BASE_URL")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	if cfg.Model == "" {
		cfg.Model = "llama3.2"
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if cfg.NumPredict <= 0 {
		cfg.NumPredict = 500
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}
