package dto

import "stargate-api/pkg/response"

// ── 人员模块 ──

// CreatePersonRequest POST /person
type CreatePersonRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// UpdatePersonRequest PUT /person
type UpdatePersonRequest struct {
	CurrentName string `json:"currentName" binding:"required,max=200"`
	NewName     string `json:"newName"     binding:"required,max=200"`
}

// PersonResponse 人员及其宇航员详情
// 从未任职的人员不含详情字段
type PersonResponse struct {
	PersonID         uint    `json:"personId"`
	Name             string  `json:"name"`
	CurrentRank      *string `json:"currentRank,omitempty"`
	CurrentDutyTitle *string `json:"currentDutyTitle,omitempty"`
	CareerStartDate  *string `json:"careerStartDate,omitempty"`
	CareerEndDate    *string `json:"careerEndDate,omitempty"`
}

// PeopleResult GET /person
type PeopleResult struct {
	response.Response
	People []PersonResponse `json:"people"`
}

// PersonResult GET /person/:name，无匹配时 Person 为 null
type PersonResult struct {
	response.Response
	Person *PersonResponse `json:"person"`
}

// IDResult 新建或更新记录的 ID
type IDResult struct {
	response.Response
	ID uint `json:"id"`
}
