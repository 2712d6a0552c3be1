// Package config loads typed configuration from environment variables,
// optionally seeded from dotenv files, using caarlos0/env struct tags and
// joho/godotenv.
package config
