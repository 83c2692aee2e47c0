package client

import "net/http"

// UploadMessage maps an upload failure to the message shown to the user.
// ok is false when the failure has no dedicated message.
//
// Transport failures are classified timeout first, then offline, then
// "no response"; a response always wins over connectivity state.
func UploadMessage(f Failure) (msg string, ok bool) {
	switch f := f.(type) {
	case *TransportFailure:
		switch f.Kind {
		case Timeout:
			return MsgUploadTimeout, true
		case Offline:
			return MsgNoConnection, true
		default:
			return MsgNetworkError, true
		}

	case *ServerFailure:
		switch f.Status {
		case http.StatusRequestEntityTooLarge:
			return MsgFileTooLarge, true
		case http.StatusUnsupportedMediaType:
			return MsgUnsupportedType, true
		case http.StatusBadRequest:
			if f.Message != "" {
				return f.Message, true
			}
			return MsgInvalidFormat, true
		case http.StatusUnauthorized:
			return MsgAuthRequired, true
		case http.StatusForbidden:
			return MsgPermissionDenied, true
		default:
			detail := f.Message
			if detail == "" {
				detail = f.StatusText
			}
			return MsgServerError + detail, true
		}
	}
	return "", false
}
