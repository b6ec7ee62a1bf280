package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func write(c *gin.Context, status int, r Resp) {
	c.JSON(status, r)
}

// NewOKResp wraps data in a success envelope.
func NewOKResp(data any) Resp {
	return Resp{Message: MessageSuccess, Data: data}
}

// OK sends 200 with data.
func OK(c *gin.Context, data any) {
	write(c, http.StatusOK, NewOKResp(data))
}

// Reply sends the outcome of a command. A command that failed on user input is
// still a 200: the reply text is the answer, and ErrorCode marks the failure.
func Reply(c *gin.Context, data any, failed bool) {
	if !failed {
		OK(c, data)
		return
	}
	write(c, http.StatusOK, Resp{
		ErrorCode: CommandFailedCode,
		Message:   MessageCommandFailed,
		Data:      data,
	})
}

// Error sends 400 with err as the message. A nil data becomes an empty object.
func Error(c *gin.Context, err error, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	write(c, http.StatusBadRequest, Resp{
		ErrorCode: ValidationErrorCode,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500. err is not exposed to the client.
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	write(c, http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401.
func Unauthorized(c *gin.Context) {
	write(c, http.StatusUnauthorized, Resp{ErrorCode: UnauthorizedCode, Message: MessageUnauthorized})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	write(c, http.StatusTooManyRequests, Resp{ErrorCode: TooManyRequestsCode, Message: MessageTooMany})
}
