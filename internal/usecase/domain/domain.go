// Package domain contains application usecases orchestrating onboarding and tenant reads.
package domain

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"whatsapp-crm/internal/entities"
	"whatsapp-crm/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultCountryCode = "+91"
	defaultRecentLeads = 5
)

// Settings holds tunables of the usecase layer.
// CountryCode prefixes every WhatsApp number, e.g. "+91"; Country is stored
// on clients created during onboarding.
type Settings struct {
	CountryCode string
	Country     string
	RecentLeads int
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	log      *zap.SugaredLogger
	repo     repository.Repository
	timeout  time.Duration
	settings Settings

	numberPattern *regexp.Regexp
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.Repository,
	timeout time.Duration,
	settings Settings,
) *Usecase {
	if settings.CountryCode == "" {
		settings.CountryCode = defaultCountryCode
	}
	if settings.RecentLeads <= 0 {
		settings.RecentLeads = defaultRecentLeads
	}
	return &Usecase{
		log:      log.Named("usecase"),
		repo:     repo,
		timeout:  timeout,
		settings: settings,

		numberPattern: whatsAppPattern(settings.CountryCode),
	}
}

// FindMembershipByUser returns the membership of a user within the call timeout.
func (u *Usecase) FindMembershipByUser(ctx context.Context, userID string) (*entities.Membership, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	return u.repo.FindMembershipByUser(ctx, userID)
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func requireUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}
	if _, err := uuid.Parse(userID); err != nil {
		return fmt.Errorf("%w: user_id must be a uuid", entities.ErrInvalidArgument)
	}
	return nil
}

func requireClientID(clientID string) error {
	if clientID == "" {
		return fmt.Errorf("%w: client_id is required", entities.ErrInvalidArgument)
	}
	if _, err := uuid.Parse(clientID); err != nil {
		return fmt.Errorf("%w: client_id must be a uuid", entities.ErrInvalidArgument)
	}
	return nil
}
