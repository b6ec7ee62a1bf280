package response

const (
	MessageSuccess       = "Success"
	MessageCommandFailed = "Command failed"
	MessageUnauthorized  = "Unauthorized"
	MessageTooMany       = "Too many requests"
	DefaultErrorMessage  = "Something went wrong"

	DateTimeFormat = "2006-01-02 15:04:05"

	// Error codes carried in Resp.ErrorCode.
	ValidationErrorCode     = 1
	CommandFailedCode       = 2
	UnauthorizedCode        = 401
	TooManyRequestsCode     = 429
	InternalServerErrorCode = 500
)
