package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"stargate-api/internal/repository"
	apperrors "stargate-api/pkg/errors"
	"stargate-api/pkg/events"
	"stargate-api/pkg/metrics"
)

// Service 所有业务 Service 的聚合
type Service struct {
	Person        PersonService
	AstronautDuty AstronautDutyService
	Export        ExportService
}

// NewService 创建 Service 聚合，publisher 与 m 可为 nil
func NewService(
	repo *repository.Repository,
	publisher events.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Service {
	if publisher == nil {
		publisher = events.NewNopPublisher()
	}
	return &Service{
		Person:        NewPersonService(repo, publisher, m, logger),
		AstronautDuty: NewAstronautDutyService(repo, publisher, m, logger),
		Export:        NewExportService(repo, logger),
	}
}

// ── 内部辅助函数 ──

// isClassified 判断 err 是否已带错误分类
func isClassified(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrConflict) ||
		errors.Is(err, apperrors.ErrInvalid) ||
		errors.Is(err, apperrors.ErrPersistence)
}

// persistenceError 未分类的存储错误归为持久化失败
func persistenceError(err error) error {
	if err == nil || isClassified(err) {
		return err
	}
	return fmt.Errorf("%w: %w", apperrors.ErrPersistence, err)
}

// publish 事务提交后发布事件，失败只记日志
func publish(ctx context.Context, p events.Publisher, logger *zap.Logger, key string, event any) {
	if err := p.Publish(ctx, key, event); err != nil {
		logger.Warn("发布事件失败", zap.String("routing_key", key), zap.Error(err))
	}
}
