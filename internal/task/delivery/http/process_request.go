package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processExecuteReq(c *gin.Context) (executeReq, error) {
	var req executeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
