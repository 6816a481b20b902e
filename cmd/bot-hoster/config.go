package main

import (
	"os"
	"strconv"
)

type Config struct {
	ServerURL string
	PoolSize  int
	DBPath    string
}

func LoadConfig() *Config {
	serverURL := getEnv("CYCLES_SERVER_URL", "ws://localhost:8080/ws")
	poolSize, _ := strconv.Atoi(getEnv("BOT_POOL_SIZE", "4"))
	if poolSize < 1 {
		poolSize = 1
	}

	return &Config{
		ServerURL: serverURL,
		PoolSize:  poolSize,
		DBPath:    os.Getenv("CYCLES_DB"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
