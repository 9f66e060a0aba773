package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Host string
	Port string

	// Submission log settings
	DatabasePath string

	// Logging settings
	LogLevel  string
	LogFormat string

	// Cache settings
	CacheSize int
	CacheTTL  time.Duration

	// Store settings
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	StoreTimeout       time.Duration
	RollbackOnFailure  bool

	// Destination tables
	Tables Tables

	// Intake settings
	Location     *time.Location
	DashboardURL string
}

// Tables names the destination table of each department
type Tables struct {
	BPSO  string
	BCPC  string
	BADAC string
	VAWC  string
}

// DefaultTables are the production table names
var DefaultTables = Tables{
	BPSO:  "bms_bpso_portal_complaint_records",
	BCPC:  "bms_bcpc_portal_complaint_records",
	BADAC: "bms_badac_portal_complaint_records",
	VAWC:  "bms_vawc_portal_case_records",
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Not an error if .env doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		Host:               getEnv("HOST", "0.0.0.0"),
		Port:               getEnv("PORT", "8080"),
		DatabasePath:       getEnv("DATABASE_PATH", "./data/submissions.db"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
		AWSRegion:          getEnv("AWS_REGION", "ap-southeast-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoDBEndpoint:   getEnv("DYNAMODB_ENDPOINT", ""),
		DashboardURL:       getEnv("DASHBOARD_URL", "http://localhost:3000/views/dashboard/departments/BPSO/Complaint%20main/complaints.php"),
		Tables: Tables{
			BPSO:  getEnv("TABLE_BPSO", DefaultTables.BPSO),
			BCPC:  getEnv("TABLE_BCPC", DefaultTables.BCPC),
			BADAC: getEnv("TABLE_BADAC", DefaultTables.BADAC),
			VAWC:  getEnv("TABLE_VAWC", DefaultTables.VAWC),
		},
	}

	var err error
	cfg.CacheSize, err = strconv.Atoi(getEnv("CACHE_SIZE", "500"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_SIZE: %w", err)
	}

	cacheTTL, err := strconv.Atoi(getEnv("CACHE_TTL", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = time.Duration(cacheTTL) * time.Minute

	storeTimeout, err := strconv.Atoi(getEnv("STORE_TIMEOUT", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_TIMEOUT: %w", err)
	}
	cfg.StoreTimeout = time.Duration(storeTimeout) * time.Second

	cfg.RollbackOnFailure, err = strconv.ParseBool(getEnv("STORE_ROLLBACK_ON_FAILURE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_ROLLBACK_ON_FAILURE: %w", err)
	}

	cfg.Location, err = time.LoadLocation(getEnv("TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
