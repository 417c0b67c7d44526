package config

import "os"

type Config struct {
	HTTPAddr      string
	PublicBaseURL string
	StaticDir     string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		HTTPAddr:      getenv("HTTP_ADDR", ":3000"),
		PublicBaseURL: getenv("PUBLIC_BASE_URL", "http://localhost:3000"),
		StaticDir:     getenv("STATIC_DIR", "."),
	}
}
