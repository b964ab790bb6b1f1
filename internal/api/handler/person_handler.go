package handler

import (
	"github.com/gin-gonic/gin"

	"stargate-api/internal/dto"
	"stargate-api/internal/service"
	"stargate-api/pkg/response"
)

// PersonHandler 人员模块 HTTP 处理器
type PersonHandler struct {
	personSvc service.PersonService
}

// NewPersonHandler 创建 PersonHandler 实例
func NewPersonHandler(personSvc service.PersonService) *PersonHandler {
	return &PersonHandler{personSvc: personSvc}
}

// ListPeople 列出全部人员及其宇航员详情
// GET /person
func (h *PersonHandler) ListPeople(c *gin.Context) {
	result, err := h.personSvc.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// GetPerson 按姓名查询人员（不区分大小写）
// GET /person/:name
func (h *PersonHandler) GetPerson(c *gin.Context) {
	result, err := h.personSvc.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// CreatePerson 创建人员
// POST /person
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req dto.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}

	result, err := h.personSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleCommandError(c, err)
		return
	}

	response.Created(c, result)
}

// UpdatePerson 人员改名
// PUT /person
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	var req dto.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}

	result, err := h.personSvc.Update(c.Request.Context(), &req)
	if err != nil {
		handleCommandError(c, err)
		return
	}

	response.OK(c, result)
}
