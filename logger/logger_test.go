/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Config{Debug: true, Writer: &buf}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	if l := GetLogger(); l.GetLevel() != zerolog.DebugLevel {
		t.Errorf("Expected debug level, got %v", l.GetLevel())
	}

	Debug().Str("entity", "Agent").Msg("lookup")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected one JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["entity"] != "Agent" || entry["message"] != "lookup" || entry["level"] != "debug" {
		t.Errorf("Unexpected log entry: %v", entry)
	}
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Config{Level: "warn", Writer: &buf}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Errorf("Info should be filtered at warn level, got %q", buf.String())
	}
	Warn().Msg("kept")
	if buf.Len() == 0 {
		t.Error("Warn should be written at warn level")
	}

	SetLevel(zerolog.ErrorLevel)
	if l := GetLogger(); l.GetLevel() != zerolog.ErrorLevel {
		t.Errorf("Expected error level after SetLevel, got %v", l.GetLevel())
	}
}

func TestInvalidConfig(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("Expected error for unknown level")
	}
	if _, err := New(Config{Output: "syslog"}); err == nil {
		t.Error("Expected error for unknown output")
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Config{Writer: &buf}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	l := WithComponent("ddb")
	l.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if entry["component"] != "ddb" {
		t.Errorf("Expected component ddb, got %v", entry["component"])
	}
}
