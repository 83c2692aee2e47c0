package client

import "errors"

var (
	ErrUnavailable = errors.New("server unavailable")
	errEmptyID     = errors.New("empty file id")
)

// User-facing messages carried by *Error.
const (
	MsgUploadTimeout    = "Upload timeout. Please try again"
	MsgNoConnection     = "No internet connection"
	MsgFileTooLarge     = "File is too large for the server to process"
	MsgUnsupportedType  = "Unsupported file type"
	MsgInvalidFormat    = "Invalid file format"
	MsgAuthRequired     = "Authentication required. Please log in"
	MsgPermissionDenied = "You do not have permission to perform this action"
	MsgServerError      = "Server error: "
	MsgNetworkError     = "Network error. Please check your connection"
	MsgFetchFailed      = "Failed to fetch files"
	MsgDeleteFailed     = "Failed to delete file"
)

// Error is the normalized error returned by HTTPClient: a single
// human-readable Message, with the underlying cause kept for errors.Is/As
// and logging.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Cause }
