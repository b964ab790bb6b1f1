package handler

import (
	"github.com/gin-gonic/gin"

	"stargate-api/internal/dto"
	"stargate-api/internal/service"
	"stargate-api/pkg/response"
)

// AstronautDutyHandler 任职履历 HTTP 处理器
type AstronautDutyHandler struct {
	dutySvc service.AstronautDutyService
}

// NewAstronautDutyHandler 创建 AstronautDutyHandler 实例
func NewAstronautDutyHandler(dutySvc service.AstronautDutyService) *AstronautDutyHandler {
	return &AstronautDutyHandler{dutySvc: dutySvc}
}

// GetDuties 查询人员及其任职履历（按开始日期倒序）
// GET /astronaut-duty/:name
func (h *AstronautDutyHandler) GetDuties(c *gin.Context) {
	result, err := h.dutySvc.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// CreateDuty 登记新任职
// POST /astronaut-duty
func (h *AstronautDutyHandler) CreateDuty(c *gin.Context) {
	var req dto.CreateAstronautDutyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}

	result, err := h.dutySvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleCommandError(c, err)
		return
	}

	response.Created(c, result)
}
