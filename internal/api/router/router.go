package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"stargate-api/config"
	"stargate-api/internal/api/handler"
	"stargate-api/internal/api/middleware"
	"stargate-api/pkg/metrics"
	"stargate-api/pkg/redis"
)

// Setup 注册中间件与路由
// rdb、m 可为 nil：无 Redis 时限流放行，无 metrics 时不暴露指标
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	// 名称可含 "/"，按原始路径匹配后再解码参数
	r.UseRawPath = true
	r.UnescapePathValues = true

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	if m != nil {
		r.Use(middleware.Metrics(m))
	}

	// ── 运维端点 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if m != nil && cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})))
	}

	// ── 业务接口 ──
	api := r.Group("")
	api.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window, logger))
	}
	{
		person := api.Group("/person")
		{
			person.GET("", h.Person.ListPeople)
			person.GET("/:name", h.Person.GetPerson)
			person.POST("", h.Person.CreatePerson)
			person.PUT("", h.Person.UpdatePerson)
		}

		duty := api.Group("/astronaut-duty")
		{
			duty.GET("/:name", h.AstronautDuty.GetDuties)
			duty.GET("/:name/export", h.Export.ExportDuties)
			duty.POST("", h.AstronautDuty.CreateDuty)
		}
	}

	return r
}
