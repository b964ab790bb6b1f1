package model

import "time"

// RetiredDutyTitle 结束职业生涯的职务名
const RetiredDutyTitle = "RETIRED"

// AstronautDuty 任职履历表 astronaut_duties，只追加
// DutyEndDate 为 nil 表示当前任职
type AstronautDuty struct {
	ID            uint       `gorm:"primaryKey;autoIncrement"                                      json:"id"`
	PersonID      uint       `gorm:"not null;uniqueIndex:uq_astronaut_duties_person_title_start,priority:1;index" json:"person_id"`
	Rank          string     `gorm:"type:varchar(100);not null"                                    json:"rank"`
	DutyTitle     string     `gorm:"type:varchar(100);not null;uniqueIndex:uq_astronaut_duties_person_title_start,priority:2" json:"duty_title"`
	DutyStartDate time.Time  `gorm:"type:date;not null;uniqueIndex:uq_astronaut_duties_person_title_start,priority:3" json:"duty_start_date"`
	DutyEndDate   *time.Time `gorm:"type:date"                                                     json:"duty_end_date,omitempty"`
	BaseModel
}

// TableName 指定表名
func (AstronautDuty) TableName() string { return "astronaut_duties" }
