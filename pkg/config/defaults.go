// Package config provides centralized default values for the website service
package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found -- config defaults will be used")
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Public base URL of the rendered site (sitemap/robots)
	PublicBaseURL string

	// Website identity fallbacks. Requests may override these per call via
	// the Revas-Authority and Revas-Public-Key headers.
	DefaultWebsiteName string
	DefaultPublicKey   string

	// Remote CMS Configuration
	CMSBaseURL        string
	CMSRequestTimeout time.Duration

	// Logging
	LogDirectory     string
	LogToFile        bool
	LogIncludeSource bool
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	PublicBaseURL = getEnvString("PUBLIC_BASE_URL", "https://www.revas.app")

	// Website identity
	DefaultWebsiteName = getEnvString("REVAS_AUTHORITY", "www.revas.app")
	DefaultPublicKey = getEnvString("REVAS_PUBLIC_KEY", "revas-public-key")

	// Remote CMS
	CMSBaseURL = getEnvString("CMS_BASE_URL", "https://api.revas.app")
	CMSRequestTimeout = getEnvDuration("CMS_REQUEST_TIMEOUT", 10*time.Second)

	// Logging
	LogDirectory = getEnvString("LOG_DIRECTORY", "logs")
	LogToFile = getEnvBool("LOG_TO_FILE", false)
	LogIncludeSource = getEnvBool("LOG_INCLUDE_SOURCE", false)
}
