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

// ── 任职履历模块业务错误 ──

var (
	ErrDutyExists           = fmt.Errorf("duty with this title and start date already recorded: %w", apperrors.ErrConflict)
	ErrDutyConcurrentUpdate = fmt.Errorf("duty history changed concurrently: %w", apperrors.ErrConflict)
	ErrDutyFieldsEmpty      = fmt.Errorf("person name, rank and duty title must not be blank: %w", apperrors.ErrInvalid)
	ErrDutyStartDateInvalid = fmt.Errorf("duty start date must be YYYY-MM-DD or RFC 3339: %w", apperrors.ErrInvalid)
	ErrDutyHistoryCorrupt   = fmt.Errorf("several duties share the latest start date: %w", apperrors.ErrPersistence)
)

// AstronautDutyService 任职履历业务接口
type AstronautDutyService interface {
	// GetByName 按姓名精确匹配，姓名不存在时返回空结果
	GetByName(ctx context.Context, name string) (*dto.AstronautDutiesResult, error)
	// Create 登记新任职，同一事务内结束上一任职并更新宇航员详情，返回新任职 ID
	Create(ctx context.Context, req *dto.CreateAstronautDutyRequest) (*dto.IDResult, error)
}

type astronautDutyService struct {
	repo      *repository.Repository
	publisher events.Publisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewAstronautDutyService 创建 AstronautDutyService 实例
func NewAstronautDutyService(repo *repository.Repository, publisher events.Publisher, m *metrics.Metrics, logger *zap.Logger) AstronautDutyService {
	return &astronautDutyService{repo: repo, publisher: publisher, metrics: m, logger: logger}
}

// ────────────────────── GetByName ──────────────────────

func (s *astronautDutyService) GetByName(ctx context.Context, name string) (*dto.AstronautDutiesResult, error) {
	result := &dto.AstronautDutiesResult{AstronautDuties: []dto.AstronautDutyResponse{}}

	row, err := s.repo.Person.GetAstronautByName(ctx, name, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Debug("查询履历：人员不存在", zap.String("name", name))
			return result, nil
		}
		s.logger.Error("查询人员失败", zap.String("name", name), zap.Error(err))
		return nil, persistenceError(err)
	}
	result.Person = toPersonResponse(row)

	duties, err := s.repo.AstronautDuty.ListByPersonID(ctx, row.PersonID)
	if err != nil {
		s.logger.Error("查询任职履历失败", zap.Uint("person_id", row.PersonID), zap.Error(err))
		return nil, persistenceError(err)
	}
	for i := range duties {
		result.AstronautDuties = append(result.AstronautDuties, toDutyResponse(&duties[i]))
	}

	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *astronautDutyService) Create(ctx context.Context, req *dto.CreateAstronautDutyRequest) (*dto.IDResult, error) {
	// 空白校验看去空格后的值，写入与比较均用原值
	name, rank, title := req.PersonName, req.Rank, req.DutyTitle
	if isBlank(name) || isBlank(rank) || isBlank(title) {
		return nil, ErrDutyFieldsEmpty
	}

	start, err := ParseDutyDate(req.DutyStartDate)
	if err != nil {
		return nil, err
	}

	var (
		person *model.Person
		duty   *model.AstronautDuty
	)

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		p, err := checkRecordDuty(ctx, txRepo, name, title, start)
		if err != nil {
			return err
		}
		person = p

		duty, err = recordDuty(ctx, txRepo, p, rank, title, start)
		return err
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrPersistence) || !isClassified(err) {
			s.logger.Error("登记任职失败", zap.String("name", name), zap.Error(err))
		} else {
			s.logger.Warn("登记任职被拒绝", zap.String("name", name), zap.Error(err))
		}
		return nil, persistenceError(err)
	}

	retired := title == model.RetiredDutyTitle
	s.logger.Info("任职已登记",
		zap.Uint("duty_id", duty.ID),
		zap.String("name", name),
		zap.String("duty_title", title),
		zap.String("start", start.Format(model.DateLayout)),
	)
	s.metrics.ObserveDutyRecorded(retired)
	publish(ctx, s.publisher, s.logger, events.AstronautDutyRecorded, events.AstronautDutyRecordedEvent{
		DutyID:        duty.ID,
		PersonID:      person.ID,
		PersonName:    person.Name,
		Rank:          rank,
		DutyTitle:     title,
		DutyStartDate: start.Format(model.DateLayout),
		Retired:       retired,
		OccurredAt:    time.Now().UTC(),
	})

	return &dto.IDResult{ID: duty.ID}, nil
}

// recordDuty 在事务 Repository 上执行任职流程：
//  1. 首次任职创建详情，否则覆盖军衔与职务（职业开始日期不变）
//  2. 职务为 RETIRED 时职业结束日期为其开始日期前一天，其余职务不改结束日期
//  3. 开始日期最新的任职在新任职开始前一天结束
//  4. 追加新任职
func recordDuty(ctx context.Context, repo *repository.Repository, person *model.Person, rank, title string, start time.Time) (*model.AstronautDuty, error) {
	detail, err := repo.AstronautDetail.GetByPersonID(ctx, person.ID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		detail = &model.AstronautDetail{
			PersonID:         person.ID,
			CurrentRank:      rank,
			CurrentDutyTitle: title,
			CareerStartDate:  start,
		}
		retireIfNeeded(detail, title, start)
		if err := repo.AstronautDetail.Create(ctx, detail); err != nil {
			return nil, writeError(err)
		}
	case err != nil:
		return nil, persistenceError(err)
	default:
		detail.CurrentRank = rank
		detail.CurrentDutyTitle = title
		retireIfNeeded(detail, title, start)
		if err := repo.AstronautDetail.Update(ctx, detail); err != nil {
			return nil, writeError(err)
		}
	}

	latest, err := repo.AstronautDuty.ListLatestByPersonID(ctx, person.ID)
	if err != nil {
		return nil, persistenceError(err)
	}
	if len(latest) > 1 {
		return nil, ErrDutyHistoryCorrupt
	}
	if len(latest) == 1 {
		prev := &latest[0]
		end := model.DayBefore(start)
		prev.DutyEndDate = &end
		if err := repo.AstronautDuty.Update(ctx, prev); err != nil {
			return nil, writeError(err)
		}
	}

	duty := &model.AstronautDuty{
		PersonID:      person.ID,
		Rank:          rank,
		DutyTitle:     title,
		DutyStartDate: start,
	}
	if err := repo.AstronautDuty.Create(ctx, duty); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDutyExists
		}
		return nil, persistenceError(err)
	}

	return duty, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func retireIfNeeded(detail *model.AstronautDetail, title string, start time.Time) {
	if title != model.RetiredDutyTitle {
		return
	}
	end := model.DayBefore(start)
	detail.CareerEndDate = &end
}

// writeError 详情或上一任职写入时的唯一约束冲突视为并发更新
func writeError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDutyConcurrentUpdate
	}
	return persistenceError(err)
}

// ParseDutyDate 接受 "2006-01-02" 或 RFC 3339，只保留日期
func ParseDutyDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(model.DateLayout, s); err == nil {
		return model.DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return model.DateOf(t), nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return model.DateOf(t), nil
	}
	return time.Time{}, ErrDutyStartDateInvalid
}

func toDutyResponse(d *model.AstronautDuty) dto.AstronautDutyResponse {
	return dto.AstronautDutyResponse{
		ID:            d.ID,
		PersonID:      d.PersonID,
		Rank:          d.Rank,
		DutyTitle:     d.DutyTitle,
		DutyStartDate: d.DutyStartDate.Format(model.DateLayout),
		DutyEndDate:   model.FormatDate(d.DutyEndDate),
	}
}
