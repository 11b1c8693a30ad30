package errors

import (
	"net/http"
	"strings"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	technicalMessage := err.Error()

	// Map specific error patterns to user-friendly errors
	switch {
	case strings.Contains(technicalMessage, "search query cannot be empty"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInvalidQuery,
			Code:             ErrCodeInvalidQuery,
			HTTPStatus:       http.StatusBadRequest,
			OriginalError:    err,
		}
	case strings.Contains(technicalMessage, "API key is not configured"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgMissingCredential,
			Code:             ErrCodeMissingCredential,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	case strings.Contains(technicalMessage, "places text search"),
		strings.Contains(technicalMessage, "place details"),
		strings.Contains(technicalMessage, "timeout"),
		strings.Contains(technicalMessage, "connection"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgProviderUnavailable,
			Code:             ErrCodeProviderUnavailable,
			HTTPStatus:       http.StatusServiceUnavailable,
			OriginalError:    err,
		}
	default:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			Code:             ErrCodeInternal,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}
