package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"stargate-api/internal/model"
)

// AstronautDutyRepository 任职履历数据访问接口
type AstronautDutyRepository interface {
	Create(ctx context.Context, duty *model.AstronautDuty) error
	Update(ctx context.Context, duty *model.AstronautDuty) error
	// ListLatestByPersonID 返回开始日期最新的任职，多于一条说明履历数据损坏
	ListLatestByPersonID(ctx context.Context, personID uint) ([]model.AstronautDuty, error)
	ExistsByTitleAndStart(ctx context.Context, personID uint, dutyTitle string, start time.Time) (bool, error)
	// ListByPersonID 返回完整履历，按开始日期倒序
	ListByPersonID(ctx context.Context, personID uint) ([]model.AstronautDuty, error)
}

type astronautDutyRepo struct {
	db *gorm.DB
}

// NewAstronautDutyRepo 创建 AstronautDutyRepository 实例
func NewAstronautDutyRepo(db *gorm.DB) AstronautDutyRepository {
	return &astronautDutyRepo{db: db}
}

func (r *astronautDutyRepo) Create(ctx context.Context, duty *model.AstronautDuty) error {
	return r.db.WithContext(ctx).Create(duty).Error
}

func (r *astronautDutyRepo) Update(ctx context.Context, duty *model.AstronautDuty) error {
	return r.db.WithContext(ctx).Save(duty).Error
}

func (r *astronautDutyRepo) ListLatestByPersonID(ctx context.Context, personID uint) ([]model.AstronautDuty, error) {
	latest := r.db.
		Model(&model.AstronautDuty{}).
		Select("MAX(duty_start_date)").
		Where("person_id = ?", personID)

	var duties []model.AstronautDuty
	err := r.db.WithContext(ctx).
		Where("person_id = ? AND duty_start_date = (?)", personID, latest).
		Order("id ASC").
		Find(&duties).Error
	return duties, err
}

func (r *astronautDutyRepo) ExistsByTitleAndStart(ctx context.Context, personID uint, dutyTitle string, start time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.AstronautDuty{}).
		Where("person_id = ? AND duty_title = ? AND duty_start_date = ?", personID, dutyTitle, model.DateOf(start)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *astronautDutyRepo) ListByPersonID(ctx context.Context, personID uint) ([]model.AstronautDuty, error) {
	var duties []model.AstronautDuty
	err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("duty_start_date DESC").
		Find(&duties).Error
	return duties, err
}
