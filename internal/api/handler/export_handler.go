package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"stargate-api/internal/service"
	apperrors "stargate-api/pkg/errors"
	"stargate-api/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler 实例
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportDuties 以 Excel 下载人员任职履历
// GET /astronaut-duty/:name/export
func (h *ExportHandler) ExportDuties(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportDuties(c.Request.Context(), c.Param("name"))
	if err != nil {
		_ = c.Error(err)
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
