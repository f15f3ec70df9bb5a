package config

import (
	"log"
	"os"
	"strconv"
)

// Store driver names accepted in STORE_DRIVER.
const (
	DriverMemory = "memory"
	DriverExcel  = "excel"
	DriverSheets = "gsheets"
)

type Config struct {
	HTTPPort    string
	CORSOrigins string

	StoreDriver           string
	SheetFile             string // excel driver: path to the .xlsx workbook
	SpreadsheetID         string // gsheets driver: spreadsheet identifier
	GoogleCredentialsFile string // gsheets driver: service account credentials

	DepartmentsSheet  string
	LowStockThreshold int

	JWTSecret     string
	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:              getEnv("HTTP_PORT", "3000"),
		CORSOrigins:           getEnv("CORS_ALLOWED_ORIGINS", "*"),
		StoreDriver:           getEnv("STORE_DRIVER", DriverMemory),
		SheetFile:             getEnv("SHEET_FILE", "./warehouse.xlsx"),
		SpreadsheetID:         getEnv("SPREADSHEET_ID", ""),
		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "./credentials.json"),
		DepartmentsSheet:      getEnv("DEPARTMENTS_SHEET", "DEPARTMENTS"),
		LowStockThreshold:     getEnvInt("LOW_STOCK_THRESHOLD", 10),
		JWTSecret:             getEnv("JWT_SECRET", ""),
		AdminEmail:            getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:         getEnv("ADMIN_PASSWORD", ""),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set. It is required to sign admin sessions.")
	}
	if cfg.AdminPassword == "" {
		log.Fatal("[FATAL] ADMIN_PASSWORD is not set. It is required to log in.")
	}
	if cfg.StoreDriver == DriverSheets && cfg.SpreadsheetID == "" {
		log.Fatal("[FATAL] SPREADSHEET_ID is required when STORE_DRIVER=gsheets.")
	}
	if cfg.StoreDriver == DriverMemory {
		log.Println("[WARN] STORE_DRIVER=memory keeps all data in process memory; use excel or gsheets for persistence.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[WARN] %s=%q is not a number, using default %d", key, v, def)
		return def
	}
	return n
}
