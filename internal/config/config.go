package config

import "fmt"

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Paths   PathsConfig   `yaml:"paths"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	AWS     AWSConfig     `yaml:"aws"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port        int `yaml:"port"`
	MaxUploadMB int `yaml:"max_upload_mb"`
}

type PathsConfig struct {
	Media string `yaml:"media"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	// Model is an operator override tried before the priority list.
	Model  string   `yaml:"model"`
	Models []string `yaml:"models"`
}

type AWSConfig struct {
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) Validate() error {
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = 100
	}
	if c.Server.MaxUploadMB < 0 {
		return fmt.Errorf("server.max_upload_mb must be positive")
	}
	if c.Paths.Media == "" {
		c.Paths.Media = "uploads_audio"
	}
	if len(c.Gemini.Models) == 0 {
		c.Gemini.Models = []string{
			"gemini-2.5-pro",
			"gemini-2.5-flash",
			"gemini-2.0-flash",
		}
	}
	if c.AWS.Region == "" {
		c.AWS.Region = "us-east-1"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
