/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"context"
	"errors"
	"fmt"

	"github.com/innovexadevelopment/admin-panel-sub000/storagemodels"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a table or row cannot be found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownTable is returned when no table is mapped for a site and entity
	ErrUnknownTable = errors.New("no table mapped")

	// ErrBackend is returned when the backend rejects or fails a query
	ErrBackend = errors.New("backend query failed")

	// ErrCanceled is returned when the caller's context ends mid-read
	ErrCanceled = errors.New("read canceled")
)

// Error codes reported in ErrorInfo when the backend does not supply its own.
const (
	CodeInvalidInput = "invalid_input"
	CodeUnknownTable = "unknown_table"
	CodeCanceled     = "canceled"
	CodePanic        = "panic"
)

// NotFoundError represents an error when a table or row is not found
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

// UnknownTableError is returned by the table resolver for an unmapped site/entity pair.
type UnknownTableError struct {
	Site   string
	Entity string
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("no table mapped for entity %q on site %q", e.Entity, e.Site)
}

func (e *UnknownTableError) Is(target error) bool {
	return target == ErrUnknownTable || target == ErrNotFound
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

// BackendError wraps a failure reported by a count or range query.
// Code carries the backend's own error code when it has one.
type BackendError struct {
	Op    string
	Table string
	Code  string
	Err   error
}

func (e *BackendError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func (e *BackendError) Is(target error) bool {
	if target == ErrBackend {
		return true
	}
	if target == ErrCanceled {
		return errors.Is(e.Err, context.Canceled) || errors.Is(e.Err, context.DeadlineExceeded)
	}
	return false
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewUnknownTableError creates a new UnknownTableError
func NewUnknownTableError(site, entity string) error {
	return &UnknownTableError{Site: site, Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewBackendError creates a new BackendError
func NewBackendError(op, table, code string, err error) error {
	return &BackendError{Op: op, Table: table, Code: code, Err: err}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnknownTable checks if an error is an unmapped table error
func IsUnknownTable(err error) bool {
	return errors.Is(err, ErrUnknownTable)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsBackendError checks if an error came from the backend
func IsBackendError(err error) bool {
	return errors.Is(err, ErrBackend)
}

// IsCanceled checks if an error was caused by context cancellation or deadline
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// Info converts err into the {message, code} shape handed to callers.
// The message is the raw error text; callers show it to operators as-is.
func Info(err error) *storagemodels.ErrorInfo {
	if err == nil {
		return nil
	}
	info := &storagemodels.ErrorInfo{Message: err.Error()}

	var be *BackendError
	switch {
	case errors.As(err, &be) && be.Code != "":
		info.Code = be.Code
	case IsCanceled(err):
		info.Code = CodeCanceled
	case IsUnknownTable(err):
		info.Code = CodeUnknownTable
	case IsValidationError(err):
		info.Code = CodeInvalidInput
	}
	return info
}
