package http

import (
	"github.com/gin-gonic/gin"

	"task-tracker/pkg/response"
)

// Execute godoc
// @Summary     Run a command line
// @Description Runs one command line (e.g. "todo read book") against the session and returns the reply text.
// @Description Mistakes in the command are reported in the reply with failed=true, not as HTTP errors.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body executeReq true "Command line"
// @Success     200  {object} executeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commands [POST]
func (h *handler) Execute(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExecuteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Execute(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Execute: %v", err)
		response.InternalError(c, err)
		return
	}

	response.Reply(c, newExecuteResp(output), output.Err != nil)
}

// List godoc
// @Summary     List tasks
// @Description Returns the tasks in the session with their current positions, optionally filtered by type tag.
// @Tags        Tasks
// @Produce     json
// @Param       type query string false "Type tag filter (T, D or E)"
// @Success     200 {object} listResp
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newListResp(output))
}
