// Package common defines sentinel errors shared by the reference backend
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Upload validation errors.
	ErrorFileTooLarge       = errors.New("file too large")
	ErrorUnsupportedType    = errors.New("unsupported file type")
	ErrorMissingFile        = errors.New("no file provided")
	ErrorInvalidStorageKind = errors.New("invalid storage driver")
)
