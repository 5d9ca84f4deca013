/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/kaseyaschema/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvFile, EnvLogLevel, EnvLogOutput, EnvLogDebug, EnvRegion,
		EnvAccessKeyID, EnvSecretKey, EnvDynamoDBTable, EnvDynamoEndpoint} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.False(t, cfg.Log.Debug)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Empty(t, cfg.DynamoDB.Table)

	assert.Error(t, cfg.RequireSnapshotStore())
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogDebug, "true")
	t.Setenv(EnvRegion, "eu-west-1")
	t.Setenv(EnvDynamoDBTable, "kaseya-snapshots")
	t.Setenv(EnvDynamoEndpoint, "http://localhost:8000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, "eu-west-1", cfg.AWS.Region)
	assert.Equal(t, "kaseya-snapshots", cfg.DynamoDB.Table)
	assert.Equal(t, "http://localhost:8000", cfg.DynamoDB.Endpoint)
	assert.NoError(t, cfg.RequireSnapshotStore())
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "kschema.env")
	require.NoError(t, os.WriteFile(path, []byte("KSCHEMA_DDB_TABLE=from-file\nAWS_REGION=ap-south-1\n"), 0o600))
	t.Setenv(EnvFile, path)
	t.Setenv(EnvRegion, "us-west-2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.DynamoDB.Table)
	assert.Equal(t, "us-west-2", cfg.AWS.Region, "environment wins over the file")
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogDebug, "maybe")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), EnvLogDebug)

	clearEnv(t)
	t.Setenv(EnvFile, filepath.Join(t.TempDir(), "missing.env"))
	_, err = Load()
	assert.Error(t, err)
}

func TestRequireSnapshotStore(t *testing.T) {
	cfg := &Config{
		AWS:      AWS{Region: "us-east-1", AccessKeyID: "AKIA"},
		DynamoDB: DynamoDB{Table: "t"},
	}
	err := cfg.RequireSnapshotStore()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvAccessKeyID)

	cfg.AWS.SecretAccessKey = "secret"
	assert.NoError(t, cfg.RequireSnapshotStore())
}
