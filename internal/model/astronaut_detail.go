package model

import "time"

// AstronautDetail 宇航员详情表 astronaut_details，人员当前职业快照
// 首次任职时创建，之后每次任职更新
type AstronautDetail struct {
	ID               uint       `gorm:"primaryKey;autoIncrement"                                  json:"id"`
	PersonID         uint       `gorm:"not null;uniqueIndex:uq_astronaut_details_person"          json:"person_id"`
	CurrentRank      string     `gorm:"type:varchar(100);not null"                                json:"current_rank"`
	CurrentDutyTitle string     `gorm:"type:varchar(100);not null"                                json:"current_duty_title"`
	CareerStartDate  time.Time  `gorm:"type:date;not null"                                        json:"career_start_date"`
	CareerEndDate    *time.Time `gorm:"type:date"                                                 json:"career_end_date,omitempty"`
	BaseModel
}

// TableName 指定表名
func (AstronautDetail) TableName() string { return "astronaut_details" }
