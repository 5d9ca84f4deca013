/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads the kschema settings from the environment and an optional dotenv file.
package config

import (
	"github.com/suparena/kaseyaschema/logger"
)

// Environment variable names.
const (
	EnvFile           = "KSCHEMA_ENV_FILE"
	EnvLogLevel       = "KSCHEMA_LOG_LEVEL"
	EnvLogOutput      = "KSCHEMA_LOG_OUTPUT"
	EnvLogDebug       = "KSCHEMA_LOG_DEBUG"
	EnvRegion         = "AWS_REGION"
	EnvAccessKeyID    = "AWS_ACCESS_KEY_ID"
	EnvSecretKey      = "AWS_SECRET_ACCESS_KEY"
	EnvDynamoDBTable  = "KSCHEMA_DDB_TABLE"
	EnvDynamoEndpoint = "KSCHEMA_DDB_ENDPOINT"
)

type Config struct {
	Log      logger.Config
	AWS      AWS
	DynamoDB DynamoDB
}

type AWS struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// DynamoDB locates the snapshot table.
type DynamoDB struct {
	Table    string
	Endpoint string
}
