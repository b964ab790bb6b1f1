package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"stargate-api/internal/dto"
	"stargate-api/internal/model"
	"stargate-api/internal/repository"
	apperrors "stargate-api/pkg/errors"
	"stargate-api/pkg/events"
	"stargate-api/pkg/metrics"
)

// ── 人员模块业务错误 ──

var (
	ErrPersonNotFound  = fmt.Errorf("person not found: %w", apperrors.ErrNotFound)
	ErrPersonNameTaken = fmt.Errorf("person name already taken: %w", apperrors.ErrConflict)
	ErrPersonNameEmpty = fmt.Errorf("person name must not be blank: %w", apperrors.ErrInvalid)
)

// PersonService 人员业务接口
type PersonService interface {
	List(ctx context.Context) (*dto.PeopleResult, error)
	// GetByName 去空格后不区分大小写匹配，姓名不存在时 Person 为 nil 而非报错
	GetByName(ctx context.Context, name string) (*dto.PersonResult, error)
	Create(ctx context.Context, req *dto.CreatePersonRequest) (*dto.IDResult, error)
	Update(ctx context.Context, req *dto.UpdatePersonRequest) (*dto.IDResult, error)
}

type personService struct {
	repo      *repository.Repository
	publisher events.Publisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewPersonService 创建 PersonService 实例
func NewPersonService(repo *repository.Repository, publisher events.Publisher, m *metrics.Metrics, logger *zap.Logger) PersonService {
	return &personService{repo: repo, publisher: publisher, metrics: m, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *personService) List(ctx context.Context) (*dto.PeopleResult, error) {
	rows, err := s.repo.Person.ListAstronauts(ctx)
	if err != nil {
		s.logger.Error("列出人员失败", zap.Error(err))
		return nil, persistenceError(err)
	}

	people := make([]dto.PersonResponse, 0, len(rows))
	for i := range rows {
		people = append(people, *toPersonResponse(&rows[i]))
	}

	return &dto.PeopleResult{People: people}, nil
}

// ────────────────────── GetByName ──────────────────────

func (s *personService) GetByName(ctx context.Context, name string) (*dto.PersonResult, error) {
	name = strings.TrimSpace(name)

	row, err := s.repo.Person.GetAstronautByName(ctx, name, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.PersonResult{}, nil
		}
		s.logger.Error("查询人员失败", zap.String("name", name), zap.Error(err))
		return nil, persistenceError(err)
	}

	return &dto.PersonResult{Person: toPersonResponse(row)}, nil
}

// ────────────────────── Create ──────────────────────

func (s *personService) Create(ctx context.Context, req *dto.CreatePersonRequest) (*dto.IDResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrPersonNameEmpty
	}

	person := &model.Person{Name: name}

	err := s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := checkCreatePerson(ctx, txRepo, name); err != nil {
			return err
		}
		if err := txRepo.Person.Create(ctx, person); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrPersonNameTaken
			}
			return persistenceError(err)
		}
		return nil
	})
	if err != nil {
		s.logFailure("创建人员", name, err)
		return nil, persistenceError(err)
	}

	s.logger.Info("人员已创建", zap.Uint("id", person.ID), zap.String("name", name))
	s.metrics.ObservePersonCreated()
	publish(ctx, s.publisher, s.logger, events.PersonCreated, events.PersonCreatedEvent{
		PersonID:   person.ID,
		Name:       person.Name,
		OccurredAt: time.Now().UTC(),
	})

	return &dto.IDResult{ID: person.ID}, nil
}

// ────────────────────── Update ──────────────────────

func (s *personService) Update(ctx context.Context, req *dto.UpdatePersonRequest) (*dto.IDResult, error) {
	currentName := strings.TrimSpace(req.CurrentName)
	newName := strings.TrimSpace(req.NewName)
	if currentName == "" || newName == "" {
		return nil, ErrPersonNameEmpty
	}

	var person *model.Person

	err := s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		p, err := checkRenamePerson(ctx, txRepo, currentName, newName)
		if err != nil {
			return err
		}
		person = p

		if p.Name == newName {
			return nil
		}
		p.Name = newName
		if err := txRepo.Person.Update(ctx, p); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrPersonNameTaken
			}
			return persistenceError(err)
		}
		return nil
	})
	if err != nil {
		s.logFailure("人员改名", currentName, err)
		return nil, persistenceError(err)
	}

	s.logger.Info("人员已改名",
		zap.Uint("id", person.ID),
		zap.String("from", currentName),
		zap.String("to", newName),
	)
	if currentName != newName {
		publish(ctx, s.publisher, s.logger, events.PersonRenamed, events.PersonRenamedEvent{
			PersonID:   person.ID,
			OldName:    currentName,
			NewName:    newName,
			OccurredAt: time.Now().UTC(),
		})
	}

	return &dto.IDResult{ID: person.ID}, nil
}

// ── 内部辅助函数 ──

// logFailure 业务校验失败记 Warn，其余记 Error
func (s *personService) logFailure(op, name string, err error) {
	if errors.Is(err, apperrors.ErrPersistence) || !isClassified(err) {
		s.logger.Error(op+"失败", zap.String("name", name), zap.Error(err))
		return
	}
	s.logger.Warn(op+"被拒绝", zap.String("name", name), zap.Error(err))
}

func toPersonResponse(row *model.PersonAstronaut) *dto.PersonResponse {
	return &dto.PersonResponse{
		PersonID:         row.PersonID,
		Name:             row.Name,
		CurrentRank:      row.CurrentRank,
		CurrentDutyTitle: row.CurrentDutyTitle,
		CareerStartDate:  model.FormatDate(row.CareerStartDate),
		CareerEndDate:    model.FormatDate(row.CareerEndDate),
	}
}
