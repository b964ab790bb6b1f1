package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	Person          PersonRepository
	AstronautDetail AstronautDetailRepository
	AstronautDuty   AstronautDutyRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:              db,
		Person:          NewPersonRepo(db),
		AstronautDetail: NewAstronautDetailRepo(db),
		AstronautDuty:   NewAstronautDutyRepo(db),
	}
}

// WithTx 返回绑定到事务 tx 的 Repository，tx 为 nil 时返回 r
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}

// Transaction 在事务中执行 fn，返回 nil 提交，否则回滚
// 未绑定 db 的 Repository（测试中的 mock）直接执行 fn
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
