// Package errors defines the error taxonomy for the Student Data Explorer
// pipeline. Every fatal condition carries a classified type so callers can
// distinguish failures without string matching.
package errors

import (
	"fmt"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeSchema     ErrorType = "SCHEMA"
	ErrTypeData       ErrorType = "DATA"
	ErrTypeStatistics ErrorType = "STATISTICS"
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeStorage    ErrorType = "STORAGE"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// NewStorageError creates a storage (load/save) error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// SchemaError reports required columns absent from the input. The message
// enumerates every missing column and every column actually present.
type SchemaError struct {
	Missing []string
	Found   []string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	return fmt.Sprintf("[%s] missing required columns: [%s]; found columns: [%s]",
		ErrTypeSchema, strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
}

// NewSchemaError creates a schema validation error
func NewSchemaError(missing, found []string) *SchemaError {
	return &SchemaError{Missing: missing, Found: found}
}

// DataError reports a column whose contents cannot support a required
// computation, e.g. an imputation source with no present values to average.
type DataError struct {
	Column  string
	Message string
}

// Error implements the error interface
func (e *DataError) Error() string {
	return fmt.Sprintf("[%s] column %q: %s", ErrTypeData, e.Column, e.Message)
}

// NewDataError creates a data error for a named column
func NewDataError(column, message string) *DataError {
	return &DataError{Column: column, Message: message}
}

// StatisticsError reports an aggregate computation requested over data that
// cannot support it, e.g. extremal lookup over an empty record set.
type StatisticsError struct {
	Statistic string
	Message   string
}

// Error implements the error interface
func (e *StatisticsError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", ErrTypeStatistics, e.Statistic, e.Message)
}

// NewStatisticsError creates a statistics error for a named statistic
func NewStatisticsError(statistic, message string) *StatisticsError {
	return &StatisticsError{Statistic: statistic, Message: message}
}
