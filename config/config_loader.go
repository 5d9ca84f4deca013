/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/suparena/kaseyaschema/errors"
)

// Load reads the settings. When KSCHEMA_ENV_FILE names a dotenv file it is loaded
// first; variables already set in the environment take precedence over it.
func Load() (*Config, error) {
	if path := os.Getenv(EnvFile); path != "" {
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}

	r := &configReader{}
	cfg := &Config{}

	cfg.Log.Level = r.readOptionalString(EnvLogLevel, "info")
	cfg.Log.Output = r.readOptionalString(EnvLogOutput, "stderr")
	cfg.Log.Debug = r.readOptionalBool(EnvLogDebug, false)

	cfg.AWS = AWS{
		Region:          r.readOptionalString(EnvRegion, "us-east-1"),
		AccessKeyID:     r.readOptionalString(EnvAccessKeyID, ""),
		SecretAccessKey: r.readOptionalString(EnvSecretKey, ""),
	}
	cfg.DynamoDB = DynamoDB{
		Table:    r.readOptionalString(EnvDynamoDBTable, ""),
		Endpoint: r.readOptionalString(EnvDynamoEndpoint, ""),
	}

	if err := r.err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RequireSnapshotStore reports the settings the DynamoDB snapshot store cannot run without.
func (c *Config) RequireSnapshotStore() error {
	var errs []error
	if c.DynamoDB.Table == "" {
		errs = append(errs, errors.NewValidationError(EnvDynamoDBTable, "must be non-empty"))
	}
	if c.AWS.Region == "" {
		errs = append(errs, errors.NewValidationError(EnvRegion, "must be non-empty"))
	}
	if (c.AWS.AccessKeyID == "") != (c.AWS.SecretAccessKey == "") {
		errs = append(errs, errors.NewValidationError(EnvAccessKeyID, "access key id and secret must be set together"))
	}
	return stderrors.Join(errs...)
}

type configReader struct {
	errors []error
}

func (r *configReader) readOptionalString(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return defaultValue
}

func (r *configReader) readOptionalBool(key string, defaultValue bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		r.errors = append(r.errors, errors.NewValidationError(key, fmt.Sprintf("invalid boolean %q", v)))
		return defaultValue
	}
	return b
}

func (r *configReader) err() error {
	return stderrors.Join(r.errors...)
}
