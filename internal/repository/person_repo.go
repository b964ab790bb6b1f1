package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stargate-api/internal/model"
)

// PersonRepository 人员数据访问接口
type PersonRepository interface {
	Create(ctx context.Context, person *model.Person) error
	// GetByName 按姓名精确匹配（区分大小写）
	GetByName(ctx context.Context, name string) (*model.Person, error)
	// LockByName 同 GetByName，PostgreSQL 上加行锁 (FOR UPDATE)，须在事务内调用
	LockByName(ctx context.Context, name string) (*model.Person, error)
	Update(ctx context.Context, person *model.Person) error
	// ListAstronauts 全部人员及其详情，按 id 升序
	ListAstronauts(ctx context.Context) ([]model.PersonAstronaut, error)
	// GetAstronautByName 按姓名查询人员及其详情，ignoreCase 为 true 时不区分大小写
	// 无匹配返回 gorm.ErrRecordNotFound
	GetAstronautByName(ctx context.Context, name string, ignoreCase bool) (*model.PersonAstronaut, error)
}

type personRepo struct {
	db *gorm.DB
}

// NewPersonRepo 创建 PersonRepository 实例
func NewPersonRepo(db *gorm.DB) PersonRepository {
	return &personRepo{db: db}
}

func (r *personRepo) Create(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}

func (r *personRepo) GetByName(ctx context.Context, name string) (*model.Person, error) {
	var person model.Person
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&person).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepo) LockByName(ctx context.Context, name string) (*model.Person, error) {
	q := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var person model.Person
	if err := q.Where("name = ?", name).First(&person).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepo) Update(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).Save(person).Error
}

func (r *personRepo) ListAstronauts(ctx context.Context) ([]model.PersonAstronaut, error) {
	var rows []model.PersonAstronaut
	err := r.astronauts(ctx).
		Order("p.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *personRepo) GetAstronautByName(ctx context.Context, name string, ignoreCase bool) (*model.PersonAstronaut, error) {
	q := r.astronauts(ctx)
	if ignoreCase {
		q = q.Where("LOWER(p.name) = LOWER(?)", name)
	} else {
		q = q.Where("p.name = ?", name)
	}

	var rows []model.PersonAstronaut
	if err := q.Order("p.id ASC").Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

// astronauts 所有读操作共用的 people LEFT JOIN astronaut_details 查询
func (r *personRepo) astronauts(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("people AS p").
		Select("p.id AS person_id, p.name AS name, " +
			"d.current_rank AS current_rank, d.current_duty_title AS current_duty_title, " +
			"d.career_start_date AS career_start_date, d.career_end_date AS career_end_date").
		Joins("LEFT JOIN astronaut_details AS d ON d.person_id = p.id")
}
