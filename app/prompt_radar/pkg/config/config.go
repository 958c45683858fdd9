package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// 搜索引擎名称
const (
	EngineAuto       = "auto"
	EngineBrave      = "brave"
	EngineTavily     = "tavily"
	EngineSearXNG    = "searxng"
	EngineDuckDuckGo = "duckduckgo"
)

// LLM 提供方名称
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Config 项目配置结构体，进程启动时加载一次，之后只读
type Config struct {
	Server      ServerConfig      `yaml:"server" envPrefix:"SERVER_"`
	LLM         LLMConfig         `yaml:"llm" envPrefix:"LLM_"`
	IntentLLM   LLMConfig         `yaml:"intent_llm" envPrefix:"INTENT_LLM_"`
	TrendLLM    LLMConfig         `yaml:"trend_llm" envPrefix:"TREND_LLM_"`
	Search      SearchConfig      `yaml:"search" envPrefix:"SEARCH_"`
	Trend       TrendConfig       `yaml:"trend" envPrefix:"TREND_"`
	Log         LogConfig         `yaml:"log" envPrefix:"LOG_"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" envPrefix:"CONCURRENCY_"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Host    string        `yaml:"host" env:"HOST"`
	Port    int           `yaml:"port" env:"PORT" validate:"min=1,max=65535"`
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT" validate:"gt=0"`
	Debug   bool          `yaml:"debug" env:"DEBUG"`
}

// Addr 监听地址
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LLMConfig LLM 相关配置，Provider 为空表示继承默认 LLM 配置
type LLMConfig struct {
	Provider string        `yaml:"provider" env:"PROVIDER" validate:"omitempty,oneof=openai anthropic gemini"`
	BaseURL  string        `yaml:"base_url" env:"BASE_URL"`
	APIKey   string        `yaml:"api_key" env:"API_KEY"`
	Model    string        `yaml:"model" env:"MODEL"`
	Timeout  time.Duration `yaml:"timeout" env:"TIMEOUT"`
}

// SearchConfig 搜索相关配置
type SearchConfig struct {
	Engine       string           `yaml:"engine" env:"ENGINE" validate:"oneof=auto brave tavily searxng duckduckgo"`
	Brave        BraveConfig      `yaml:"brave" envPrefix:"BRAVE_"`
	Tavily       TavilyConfig     `yaml:"tavily" envPrefix:"TAVILY_"`
	SearXNG      SearXNGConfig    `yaml:"searxng" envPrefix:"SEARXNG_"`
	DuckDuckGo   DuckDuckGoConfig `yaml:"duckduckgo" envPrefix:"DUCKDUCKGO_"`
	Timeout      time.Duration    `yaml:"timeout" env:"TIMEOUT" validate:"gt=0"`
	ResultsLimit int              `yaml:"results_limit" env:"RESULTS_LIMIT" validate:"min=1"`
}

// BraveConfig Brave Search 配置
type BraveConfig struct {
	APIKey  string `yaml:"api_key" env:"API_KEY"`
	BaseURL string `yaml:"base_url" env:"BASE_URL"`
}

// TavilyConfig Tavily 配置
type TavilyConfig struct {
	APIKey  string `yaml:"api_key" env:"API_KEY"`
	BaseURL string `yaml:"base_url" env:"BASE_URL"`
}

// SearXNGConfig SearXNG 配置
type SearXNGConfig struct {
	BaseURL string `yaml:"base_url" env:"BASE_URL"`
}

// DuckDuckGoConfig DuckDuckGo HTML 抓取配置
type DuckDuckGoConfig struct {
	BaseURL string `yaml:"base_url" env:"BASE_URL"`
}

// TrendConfig 趋势收集配置
type TrendConfig struct {
	KeywordLimit     int  `yaml:"keyword_limit" env:"KEYWORD_LIMIT" validate:"min=1"`
	HitsPerKeyword   int  `yaml:"hits_per_keyword" env:"HITS_PER_KEYWORD" validate:"min=1"`
	EnrichSnippets   bool `yaml:"enrich_snippets" env:"ENRICH_SNIPPETS"`
	MinSnippetLength int  `yaml:"min_snippet_length" env:"MIN_SNIPPET_LENGTH" validate:"min=0"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
	File  string `yaml:"file" env:"FILE"`
}

// ConcurrencyConfig 并发控制配置
type ConcurrencyConfig struct {
	QPS int `yaml:"qps" env:"QPS" validate:"min=1"`
	RPM int `yaml:"rpm" env:"RPM" validate:"min=1"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8000,
			Timeout: 120 * time.Second,
		},
		LLM: LLMConfig{
			Provider: ProviderOpenAI,
			Timeout:  30 * time.Second,
		},
		Search: SearchConfig{
			Engine:       EngineAuto,
			Timeout:      15 * time.Second,
			ResultsLimit: 10,
		},
		Trend: TrendConfig{
			KeywordLimit:     3,
			HitsPerKeyword:   3,
			MinSnippetLength: 80,
		},
		Log: LogConfig{
			Level: "info",
		},
		Concurrency: ConcurrencyConfig{
			QPS: 2,
			RPM: 60,
		},
	}
}

// LoadConfig 加载配置：默认值 < YAML 文件 < 环境变量。path 为空或文件不存在时跳过文件
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Server.Debug && cfg.Log.Level == "info" {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate 校验配置合法性
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// IntentStage 返回意图分析阶段实际使用的 LLM 配置
func (c *Config) IntentStage() LLMConfig {
	return c.LLM.Merge(c.IntentLLM)
}

// TrendStage 返回趋势总结阶段实际使用的 LLM 配置
func (c *Config) TrendStage() LLMConfig {
	return c.LLM.Merge(c.TrendLLM)
}

// Merge 用 override 中的非空字段覆盖 base
func (base LLMConfig) Merge(override LLMConfig) LLMConfig {
	out := base
	if override.Provider != "" && override.Provider != base.Provider {
		// 换了提供方时不能沿用原来的地址和模型
		out = LLMConfig{Provider: override.Provider, Timeout: base.Timeout}
	}
	if override.BaseURL != "" {
		out.BaseURL = override.BaseURL
	}
	if override.APIKey != "" {
		out.APIKey = override.APIKey
	}
	if override.Model != "" {
		out.Model = override.Model
	}
	if override.Timeout > 0 {
		out.Timeout = override.Timeout
	}
	return out
}
