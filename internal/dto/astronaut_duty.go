package dto

import "stargate-api/pkg/response"

// ── 任职履历模块 ──

// CreateAstronautDutyRequest POST /astronaut-duty
type CreateAstronautDutyRequest struct {
	PersonName    string `json:"personName"    binding:"required,max=200"`
	Rank          string `json:"rank"          binding:"required,max=100"`
	DutyTitle     string `json:"dutyTitle"     binding:"required,max=100"`
	DutyStartDate string `json:"dutyStartDate" binding:"required"` // "2024-01-01" 或 RFC 3339
}

// AstronautDutyResponse 任职履历中的一条记录
type AstronautDutyResponse struct {
	ID            uint    `json:"id"`
	PersonID      uint    `json:"personId"`
	Rank          string  `json:"rank"`
	DutyTitle     string  `json:"dutyTitle"`
	DutyStartDate string  `json:"dutyStartDate"`
	DutyEndDate   *string `json:"dutyEndDate"`
}

// AstronautDutiesResult GET /astronaut-duty/:name
// 姓名不存在时 person 为 null，列表为空
type AstronautDutiesResult struct {
	response.Response
	Person          *PersonResponse         `json:"person"`
	AstronautDuties []AstronautDutyResponse `json:"astronautDuties"`
}
