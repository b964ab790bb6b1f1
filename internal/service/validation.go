package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"stargate-api/internal/model"
	"stargate-api/internal/repository"
)

// 写操作的前置校验，须在执行写入的事务 Repository 上调用
// 漏网的冲突由唯一索引兜底

// checkCreatePerson 姓名已被占用时返回 ErrPersonNameTaken
func checkCreatePerson(ctx context.Context, repo *repository.Repository, name string) error {
	_, err := repo.Person.GetByName(ctx, name)
	switch {
	case err == nil:
		return ErrPersonNameTaken
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		return persistenceError(err)
	}
}

// checkRenamePerson 返回待改名的人员
// currentName 不存在返回 ErrPersonNotFound，newName 属于他人返回 ErrPersonNameTaken
func checkRenamePerson(ctx context.Context, repo *repository.Repository, currentName, newName string) (*model.Person, error) {
	person, err := repo.Person.GetByName(ctx, currentName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, persistenceError(err)
	}

	if currentName == newName {
		return person, nil
	}

	other, err := repo.Person.GetByName(ctx, newName)
	switch {
	case err == nil && other.ID != person.ID:
		return nil, ErrPersonNameTaken
	case err == nil, errors.Is(err, gorm.ErrRecordNotFound):
		return person, nil
	default:
		return nil, persistenceError(err)
	}
}

// checkRecordDuty 返回任职所属人员
// 姓名不存在返回 ErrPersonNotFound，同职务同开始日期已登记返回 ErrDutyExists
// 人员行锁持有到事务结束，同一人员的任职串行登记
func checkRecordDuty(ctx context.Context, repo *repository.Repository, personName, dutyTitle string, start time.Time) (*model.Person, error) {
	person, err := repo.Person.LockByName(ctx, personName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, persistenceError(err)
	}

	exists, err := repo.AstronautDuty.ExistsByTitleAndStart(ctx, person.ID, dutyTitle, start)
	if err != nil {
		return nil, persistenceError(err)
	}
	if exists {
		return nil, ErrDutyExists
	}

	return person, nil
}
