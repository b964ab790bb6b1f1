package model

import "time"

// BaseModel 审计时间字段，所有表模型嵌入
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}

// DateLayout 日期的传输与展示格式
const DateLayout = "2006-01-02"

// DateOf 去掉时分秒，取 UTC 零点
// 查询按日期等值比较，入库日期都须经过这里
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayBefore 返回 t 的前一天
func DayBefore(t time.Time) time.Time {
	return DateOf(t).AddDate(0, 0, -1)
}

// FormatDate 格式化可空日期，nil 返回 nil
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
