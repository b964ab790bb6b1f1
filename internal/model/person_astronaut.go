package model

import "time"

// PersonAstronaut 人员 LEFT JOIN 宇航员详情的读模型
// 尚未任职时详情列为 nil
type PersonAstronaut struct {
	PersonID         uint
	Name             string
	CurrentRank      *string
	CurrentDutyTitle *string
	CareerStartDate  *time.Time
	CareerEndDate    *time.Time
}
