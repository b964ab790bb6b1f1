package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应信封，载荷类型嵌入它
type Response struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	ResponseCode int    `json:"responseCode"`
}

// Envelope 构造指定状态码的成功信封
func Envelope(status int) Response {
	return Response{
		Success:      true,
		Message:      "Successful",
		ResponseCode: status,
	}
}

// Payload 嵌入 Response 的响应 DTO 实现此接口
type Payload interface {
	SetEnvelope(Response)
}

// SetEnvelope 使嵌入类型满足 Payload
func (r *Response) SetEnvelope(env Response) { *r = env }

// ── 成功响应 ──

// OK 200
func OK(c *gin.Context, data Payload) {
	data.SetEnvelope(Envelope(http.StatusOK))
	c.JSON(http.StatusOK, data)
}

// Created 201
func Created(c *gin.Context, data Payload) {
	data.SetEnvelope(Envelope(http.StatusCreated))
	c.JSON(http.StatusCreated, data)
}

// ── 错误响应 ──
// 失败响应不描述原因，只返回状态

// Error 写入通用失败信封
func Error(c *gin.Context, httpStatus int) {
	c.JSON(httpStatus, Response{
		Success:      false,
		Message:      http.StatusText(httpStatus),
		ResponseCode: httpStatus,
	})
}

// BadRequest 400
func BadRequest(c *gin.Context) {
	Error(c, http.StatusBadRequest)
}

// NotFound 404
func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound)
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError)
}
