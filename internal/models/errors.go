package models

import (
	"errors"
	"fmt"
)

var ErrUnknownStream = errors.New("unknown notification stream")

// FieldError is used to indicate an error with a specific request field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationError rejects a malformed request before any side effect.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

func (e *ValidationError) Error() string {
	if e.Err == nil {
		return "validation failed"
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// StoreCorruptionError describes a bucket that could not be decoded. It is
// logged and the bucket is read as empty; callers never receive it.
type StoreCorruptionError struct {
	Bucket string
	Err    error
}

func (e *StoreCorruptionError) Error() string {
	return fmt.Sprintf("bucket %s is corrupt: %v", e.Bucket, e.Err)
}

func (e *StoreCorruptionError) Unwrap() error {
	return e.Err
}

type StoreWriteError struct {
	Bucket string
	Err    error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("write to bucket %s failed: %v", e.Bucket, e.Err)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Err
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsStoreWriteError(err error) bool {
	var we *StoreWriteError
	return errors.As(err, &we)
}
