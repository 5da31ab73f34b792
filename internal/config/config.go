package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Razorpay struct {
		BaseURL  string `yaml:"base_url"`
		Currency string `yaml:"currency"`
	} `yaml:"razorpay"`
	Firebase struct {
		CredentialsFile string `yaml:"credentials_file"`
	} `yaml:"firebase"`
}

// Secrets are taken from the environment, never from the YAML file.
type Secrets struct {
	RazorpayKeyID     string
	RazorpayKeySecret string
	JWTSigningKey     string
}

func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}
	return cfg
}

func LoadSecrets() Secrets {
	s := Secrets{
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		JWTSigningKey:     os.Getenv("JWT_SIGNING_KEY"),
	}
	if s.RazorpayKeyID == "" || s.RazorpayKeySecret == "" {
		log.Fatal("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET are required")
	}
	if s.JWTSigningKey == "" {
		log.Fatal("JWT_SIGNING_KEY is required")
	}
	return s
}
