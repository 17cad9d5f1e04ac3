package usecase

import (
	"time"

	"whatsapp-crm/internal/repository"
	"whatsapp-crm/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	OnboardingUsecaseInterface
	MembershipUsecaseInterface
	DashboardUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.Repository,
	timeout time.Duration,
	settings domain.Settings,
) InterfaceUsecase {
	return domain.New(log, repo, timeout, settings)
}
