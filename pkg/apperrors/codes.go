package apperrors

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	// System-level failures
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
	CodeConfigMissing ErrorCode = "CONFIG_MISSING"

	// Business-logic failures
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeSoldOut          ErrorCode = "SOLD_OUT"

	// Authentication / authorization (cross-cutting)
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"
)
