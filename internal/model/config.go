package model

import "time"

// Config is the full contractlens configuration tree
type Config struct {
	Analysis     AnalysisConfig     `yaml:"analysis" mapstructure:"analysis"`
	HTTP         HTTPConfig         `yaml:"http" mapstructure:"http"`
	LLM          LLMConfig          `yaml:"llm" mapstructure:"llm"`
	Cache        CacheConfig        `yaml:"cache" mapstructure:"cache"`
	Audit        AuditConfig        `yaml:"audit" mapstructure:"audit"`
	Server       ServerConfig       `yaml:"server" mapstructure:"server"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Logging      LoggingConfig      `yaml:"logging" mapstructure:"logging"`
}

// AnalysisConfig controls the analysis pipeline
type AnalysisConfig struct {
	Workers           int      `yaml:"workers" mapstructure:"workers"`             // Fan-out width for the independent scanners
	MaxFileSize       int64    `yaml:"max_file_size" mapstructure:"max_file_size"` // Bytes
	AllowedExtensions []string `yaml:"allowed_extensions" mapstructure:"allowed_extensions"`
	NormalizeHindi    bool     `yaml:"normalize_hindi" mapstructure:"normalize_hindi"` // Replace Hindi legal terms before analysis
	ExplainClauses    bool     `yaml:"explain_clauses" mapstructure:"explain_clauses"` // Attach explanations when an LLM is configured
	MaxExplanations   int      `yaml:"max_explanations" mapstructure:"max_explanations"`
}

// HTTPConfig controls URL fetching
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBytes      int64         `yaml:"max_bytes" mapstructure:"max_bytes"`
	Insecure      bool          `yaml:"insecure" mapstructure:"insecure"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
	HTTPProxy     string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy       string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// LLMConfig controls the optional language-model collaborator
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // openai, anthropic, ollama, "" (disabled)
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL   string `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
	UseNER    bool   `yaml:"use_ner" mapstructure:"use_ner"` // Ask the model for named entities
}

// CacheConfig controls report caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// AuditConfig controls the audit log
type AuditConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Database string `yaml:"database" mapstructure:"database"`
	User     string `yaml:"user,omitempty" mapstructure:"user"`
}

// ServerConfig controls the HTTP API
type ServerConfig struct {
	Address      string        `yaml:"address" mapstructure:"address"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Format  string `yaml:"format" mapstructure:"format"` // json, md, yaml, text; empty prints the summary
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
	XLSX    string `yaml:"xlsx,omitempty" mapstructure:"xlsx"` // Optional spreadsheet path
}

// RateLimitingConfig controls per-host request rates
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// LoggingConfig controls the structured logger
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // text, json
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Analysis: AnalysisConfig{
			Workers:           4,
			MaxFileSize:       10 * 1024 * 1024,
			AllowedExtensions: []string{".pdf", ".docx", ".doc", ".txt", ".html", ".htm", ".md"},
			NormalizeHindi:    true,
			ExplainClauses:    false,
			MaxExplanations:   10,
		},
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "contractlens/0.1 (+https://github.com/ppiankov/contractlens)",
			MaxBytes:      10 * 1024 * 1024,
			RespectRobots: true,
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default
			Timeout:   30,
			MaxTokens: 1000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "~/.contractlens/cache",
			MemoryTTL: time.Hour,
			DiskTTL:   7 * 24 * time.Hour,
		},
		Audit: AuditConfig{
			Enabled:  true,
			Database: "~/.contractlens/audit.db",
		},
		Server: ServerConfig{
			Address:      ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 2 * time.Minute,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 2,
			Burst:             1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
