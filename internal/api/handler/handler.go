package handler

import "stargate-api/internal/service"

// Handler 所有 HTTP Handler 的聚合
type Handler struct {
	Person        *PersonHandler
	AstronautDuty *AstronautDutyHandler
	Export        *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Person:        NewPersonHandler(svc.Person),
		AstronautDuty: NewAstronautDutyHandler(svc.AstronautDuty),
		Export:        NewExportHandler(svc.Export),
	}
}
