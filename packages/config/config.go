package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	AI     AIConfig     `yaml:"ai"`
	GitHub GitHubConfig `yaml:"github"`
	Server ServerConfig `yaml:"server"`
}

// AIConfig contains AI-related configuration
type AIConfig struct {
	GeminiModel     string  `yaml:"gemini_model"`
	OpenAIModel     string  `yaml:"openai_model"`
	TopK            int32   `yaml:"top_k"`
	TopP            float32 `yaml:"top_p"`
	MaxOutputTokens int32   `yaml:"max_output_tokens"`
	// Per-report generation temperatures.
	StructureTemperature float32 `yaml:"structure_temperature"`
	SetupTemperature     float32 `yaml:"setup_temperature"`
	FlowTemperature      float32 `yaml:"flow_temperature"`
	IssueTemperature     float32 `yaml:"issue_temperature"`
	// Language the reports should be written in.
	Language string `yaml:"language"`
	// SnippetMaxChars truncates each source snippet embedded in the
	// code-flow prompt.
	SnippetMaxChars int `yaml:"snippet_max_chars"`
}

// GitHubConfig contains repository-fetching configuration
type GitHubConfig struct {
	IssueLimit int `yaml:"issue_limit"`
}

// ServerConfig contains dashboard server configuration
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

var globalConfig *Config

// DefaultConfig returns the built-in defaults, used when no config file is
// present.
func DefaultConfig() *Config {
	return &Config{
		AI: AIConfig{
			GeminiModel:          "gemini-2.5-flash",
			OpenAIModel:          "gpt-4o-mini",
			TopK:                 40,
			TopP:                 0.95,
			MaxOutputTokens:      8192,
			StructureTemperature: 0.7,
			SetupTemperature:     0.5,
			FlowTemperature:      0.6,
			IssueTemperature:     0.5,
			Language:             "English",
			SnippetMaxChars:      1000,
		},
		GitHub: GitHubConfig{
			IssueLimit: 30,
		},
		Server: ServerConfig{
			ListenAddr: ":8090",
		},
	}
}

// LoadConfig loads configuration from the specified file. Missing file and
// empty path both fall back to the defaults; unset fields in a loaded file
// keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/development.yaml"
	}

	config := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			globalConfig = config
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	globalConfig = config
	return config, nil
}

// GetConfig returns the global configuration instance
func GetConfig() *Config {
	if globalConfig == nil {
		config, err := LoadConfig("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}
