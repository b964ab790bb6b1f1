package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "stargate-api/pkg/errors"
	"stargate-api/pkg/response"
)

// handleCommandError 将写操作的业务错误映射为状态码
// 被拒绝的命令一律 400，响应体不透露具体规则
func handleCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrInvalid):
		response.BadRequest(c)
	default:
		response.InternalError(c)
	}
	_ = c.Error(err)
}
