package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredPostgresEnvVars lists the variables needed when profiles live in PostgreSQL
// and DATABASE_URL is not set
var RequiredPostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// ValidateEnv checks the .env schema version and, for the postgres profile
// store, that the database variables are present
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf(ErrMsgSchemaVersionUnset, ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf(ErrMsgSchemaMismatchFmt, ExpectedEnvSchemaVersion, schemaVersion)
	}

	if os.Getenv("PROFILE_STORE") != ProfileStorePostgres || os.Getenv("DATABASE_URL") != "" {
		return nil
	}

	var missing []string
	for _, envVar := range RequiredPostgresEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf(ErrMsgMissingEnvVarsFmt, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("API_KEY") == "" && os.Getenv("ENVIRONMENT") == "prod" {
		warnings = append(warnings, "API_KEY is empty - mutating routes are open to anyone who can reach the port")
	}

	return warnings, nil
}
