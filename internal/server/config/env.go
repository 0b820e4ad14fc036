package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config values from environment variables:
//
//	ADDRESS            HTTP bind address
//	DATABASE_DSN       PostgreSQL DSN
//	SHUTDOWN_TIMEOUT   shutdown grace period, seconds
//	S3_ACCESS_KEY      S3 access key
//	S3_SECRET_KEY      S3 secret key
//	S3_BUCKET          S3 bucket name
//	S3_REGION          S3 region
//	S3_BASE_ENDPOINT   S3 base endpoint
//
// Unset variables leave the current values untouched.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SHUTDOWN_TIMEOUT"); ok {
		if seconds, err := strconv.Atoi(v); err == nil {
			config.ShutdownTimeout = time.Duration(seconds) * time.Second
		}
	}
	if v, ok := os.LookupEnv("S3_ACCESS_KEY"); ok {
		config.S3AccessKey = v
	}
	if v, ok := os.LookupEnv("S3_SECRET_KEY"); ok {
		config.S3SecretKey = v
	}
	if v, ok := os.LookupEnv("S3_BUCKET"); ok {
		config.S3Bucket = v
	}
	if v, ok := os.LookupEnv("S3_REGION"); ok {
		config.S3Region = v
	}
	if v, ok := os.LookupEnv("S3_BASE_ENDPOINT"); ok {
		config.S3BaseEndpoint = v
	}
}
