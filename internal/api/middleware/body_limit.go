package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stargate-api/pkg/response"
)

// BodyLimit 请求体大小限制
// 声明长度超限直接返回 413；未声明时读取超限由 JSON 绑定转为 400
// maxBytes <= 0 表示不限制
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge)
			c.Abort()
			return
		}

		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
