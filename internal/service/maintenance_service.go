package service

import (
	"context"

	"github.com/standupshop/backend/internal/logger"
)

// MaintenanceRepositoryIface описывает зависимости сервиса обслуживания.
type MaintenanceRepositoryIface interface {
	ClearAll(ctx context.Context) error
}

// MaintenanceService выполняет административную очистку данных.
type MaintenanceService struct {
	repo MaintenanceRepositoryIface
}

// NewMaintenanceService создаёт новый сервис обслуживания.
func NewMaintenanceService(repo MaintenanceRepositoryIface) *MaintenanceService {
	return &MaintenanceService{repo: repo}
}

// ClearAll очищает данные витрины. Операция необратима и существует
// только как ручной административный инструмент.
func (s *MaintenanceService) ClearAll(ctx context.Context, actorEmail string) error {
	logger.WithComponent("maintenance").WithField("actor", actorEmail).
		Warn("запущена полная очистка данных витрины")
	return s.repo.ClearAll(ctx)
}
