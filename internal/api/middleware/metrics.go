package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"stargate-api/pkg/metrics"
)

// Metrics 按路由模板记录请求数与耗时
// 未匹配的路径共用一个标签
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
