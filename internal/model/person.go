package model

// Person 人员表
type Person struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"                       json:"id"`
	Name string `gorm:"type:varchar(200);not null;uniqueIndex:uq_people_name" json:"name"`
	BaseModel

	// 关联
	Detail *AstronautDetail `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"detail,omitempty"`
	Duties []AstronautDuty  `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"duties,omitempty"`
}

// TableName 指定表名
func (Person) TableName() string { return "people" }
