package apperr

import "net/http"

// AppError is an error the HTTP layer knows how to serialize: a machine
// readable code plus the status to answer with.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *AppError) Error() string {
	return e.Code + ": " + e.Message
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Validation builds a 400 for ad-hoc input problems.
func Validation(message string) *AppError {
	return New("VALIDATION_ERROR", message, http.StatusBadRequest)
}

var (
	ErrInvalidEmail = New(
		"INVALID_EMAIL",
		"a valid email is required",
		http.StatusBadRequest,
	)

	ErrInvalidRating = New(
		"INVALID_RATING",
		"rating must be between 1 and 5",
		http.StatusBadRequest,
	)

	ErrTokenRequired = New(
		"TOKEN_REQUIRED",
		"no authentication token provided",
		http.StatusUnauthorized,
	)

	ErrTokenInvalid = New(
		"TOKEN_INVALID",
		"invalid token",
		http.StatusUnauthorized,
	)

	ErrNotOwner = New(
		"FORBIDDEN",
		"you do not have permission to modify this resource",
		http.StatusForbidden,
	)

	ErrParkNotFound = New(
		"PARK_NOT_FOUND",
		"park not found",
		http.StatusNotFound,
	)

	ErrCommentNotFound = New(
		"COMMENT_NOT_FOUND",
		"comment not found",
		http.StatusNotFound,
	)

	ErrBulletinNotFound = New(
		"BULLETIN_NOT_FOUND",
		"bulletin not found",
		http.StatusNotFound,
	)

	ErrPhotoNotFound = New(
		"PHOTO_NOT_FOUND",
		"photo not found",
		http.StatusNotFound,
	)

	ErrStorage = New(
		"STORAGE_ERROR",
		"storage operation failed",
		http.StatusInternalServerError,
	)
)
