package models

// Config holds all configuration for the client application
type Config struct {
	App     AppConfig
	API     APIConfig
	Payment PaymentConfig
	Session SessionConfig
	Receipt ReceiptConfig
	Logger  LoggerConfig
}

// AppConfig holds general application configuration
type AppConfig struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug"`
	Version     string `json:"version"`
}

// APIConfig holds the REST API endpoint configuration
type APIConfig struct {
	BaseURL string `json:"base_url"`
	Timeout int    `json:"timeout"` // seconds
}

// PaymentConfig holds the payment provider configuration
type PaymentConfig struct {
	PublicKey  string `json:"public_key"`
	ConfirmURL string `json:"confirm_url"`
}

// SessionConfig holds durable session storage configuration
type SessionConfig struct {
	FilePath string `json:"file_path"`
}

// ReceiptConfig holds receipt output configuration
type ReceiptConfig struct {
	OutputDir string `json:"output_dir"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
	Type     string `json:"type"` // file or stdout
}
