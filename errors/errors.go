/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a stored entity snapshot is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to register something twice
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownEntityType is returned when an entity type is not part of the catalogue
	ErrUnknownEntityType = errors.New("unknown entity type")

	// ErrInvalidSchema is returned when an entity definition is malformed
	ErrInvalidSchema = errors.New("invalid entity schema")

	// ErrNoIndexMap is returned when no index map is bound for a type
	ErrNoIndexMap = errors.New("no index map found for type")
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConfigurationError reports a lookup of an entity type the catalogue does not define.
// It signals a programming error in the caller; the catalogue never grows at runtime.
type ConfigurationError struct {
	EntityType string
}

func (e *ConfigurationError) Error() string {
	if e.EntityType == "" {
		return "schema lookup failed: empty entity type"
	}
	return fmt.Sprintf("schema lookup failed: entity type %q is not registered", e.EntityType)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrUnknownEntityType
}

// SchemaError represents a malformed entity definition
type SchemaError struct {
	Entity  string
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	switch {
	case e.Entity != "" && e.Field != "":
		return fmt.Sprintf("entity %q field %q: %s", e.Entity, e.Field, e.Message)
	case e.Entity != "":
		return fmt.Sprintf("entity %q: %s", e.Entity, e.Message)
	default:
		return fmt.Sprintf("schema: %s", e.Message)
	}
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entityType, key string) error {
	return &AlreadyExistsError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(entityType string) error {
	return &ConfigurationError{EntityType: entityType}
}

// NewSchemaError creates a new SchemaError. field may be empty for entity-level problems.
func NewSchemaError(entity, field, message string) error {
	return &SchemaError{Entity: entity, Field: field, Message: message}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConfigurationError checks if an error is an unknown entity type error
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrUnknownEntityType)
}

// IsSchemaError checks if an error is a malformed schema error
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrInvalidSchema)
}
