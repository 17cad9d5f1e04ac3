package domain

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"whatsapp-crm/internal/entities"
)

// localNumberDigits is the subscriber part length after the country code.
const localNumberDigits = 10

// CreateClient creates the business profile of a signed-in user and makes
// them its owner. If the membership cannot be written the client is deleted again.
func (u *Usecase) CreateClient(ctx context.Context, identity *entities.Identity, profile entities.BusinessProfile) (*entities.Client, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if identity == nil || requireUserID(identity.UserID) != nil {
		return nil, entities.ErrNotAuthenticated
	}

	client, err := u.validateProfile(profile)
	if err != nil {
		u.log.Infow("onboarding rejected", "user_id", identity.UserID, "error", err)
		return nil, err
	}

	_, err = u.repo.FindMembershipByUser(ctx, identity.UserID)
	switch {
	case err == nil, errors.Is(err, entities.ErrMembershipConflict):
		return nil, entities.ErrAlreadyOnboarded
	case !errors.Is(err, entities.ErrMembershipNotFound):
		return nil, fmt.Errorf("check membership: %w", err)
	}

	taken, err := u.repo.WhatsAppNumberExists(ctx, client.WhatsAppNumber)
	if err != nil {
		return nil, fmt.Errorf("check whatsapp number: %w", err)
	}
	if taken {
		u.log.Infow("whatsapp number already registered", "user_id", identity.UserID, "whatsapp_number", client.WhatsAppNumber)
		return nil, entities.ErrDuplicateWhatsAppNumber
	}

	created, err := u.repo.CreateClient(ctx, client)
	if err != nil {
		if !errors.Is(err, entities.ErrDuplicateWhatsAppNumber) {
			u.log.Errorw("failed to create client", "user_id", identity.UserID, "error", err)
		}
		return nil, err
	}

	_, err = u.repo.CreateMembership(ctx, entities.Membership{
		UserID:   identity.UserID,
		ClientID: created.ID,
		Role:     entities.RoleOwner,
	})
	if err != nil {
		u.log.Errorw("failed to link client, rolling back", "user_id", identity.UserID, "client_id", created.ID, "error", err)
		u.deleteClient(ctx, created.ID)
		if errors.Is(err, entities.ErrAlreadyOnboarded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", entities.ErrLinkFailed, err)
	}

	u.log.Infow("client onboarded", "user_id", identity.UserID, "client_id", created.ID)
	return created, nil
}

// WhatsAppNumberAvailable is the advisory pre-flight check of the onboarding form.
func (u *Usecase) WhatsAppNumberAvailable(ctx context.Context, number string) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	normalized, err := u.normalizeWhatsAppNumber(number)
	if err != nil {
		return false, err
	}
	taken, err := u.repo.WhatsAppNumberExists(ctx, normalized)
	if err != nil {
		return false, fmt.Errorf("check whatsapp number: %w", err)
	}
	return !taken, nil
}

// deleteClient runs even when the request context is already done.
func (u *Usecase) deleteClient(ctx context.Context, clientID string) {
	ctx, cancel := withTimeout(context.WithoutCancel(ctx), u.timeout)
	defer cancel()

	if err := u.repo.DeleteClient(ctx, clientID); err != nil {
		u.log.Errorw("failed to delete unlinked client", "client_id", clientID, "error", err)
	}
}

func (u *Usecase) validateProfile(p entities.BusinessProfile) (entities.Client, error) {
	name := strings.TrimSpace(p.BusinessName)
	if name == "" {
		return entities.Client{}, fmt.Errorf("%w: business_name is required", entities.ErrInvalidArgument)
	}
	number, err := u.normalizeWhatsAppNumber(p.WhatsAppNumber)
	if err != nil {
		return entities.Client{}, err
	}

	return entities.Client{
		BusinessName:   name,
		BusinessType:   strings.TrimSpace(p.BusinessType),
		PhoneNumber:    strings.TrimSpace(p.PhoneNumber),
		Email:          strings.TrimSpace(p.Email),
		Address:        strings.TrimSpace(p.Address),
		City:           strings.TrimSpace(p.City),
		State:          strings.TrimSpace(p.State),
		Country:        u.settings.Country,
		WhatsAppNumber: number,
		Website:        strings.TrimSpace(p.Website),
	}, nil
}

func (u *Usecase) normalizeWhatsAppNumber(raw string) (string, error) {
	number := SanitizeWhatsAppNumber(raw, u.settings.CountryCode)
	if !u.numberPattern.MatchString(number) {
		return "", fmt.Errorf("%w: whatsapp_number must be %s followed by exactly %d digits",
			entities.ErrInvalidArgument, u.settings.CountryCode, localNumberDigits)
	}
	return number, nil
}

// SanitizeWhatsAppNumber drops everything but digits and puts the country
// code in front. A leading country code that is already present is not doubled.
func SanitizeWhatsAppNumber(raw, countryCode string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	prefix := strings.TrimPrefix(countryCode, "+")
	if len(digits) == len(prefix)+localNumberDigits && strings.HasPrefix(digits, prefix) {
		digits = strings.TrimPrefix(digits, prefix)
	}
	return "+" + prefix + digits
}

func whatsAppPattern(countryCode string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^%s\d{%d}$`, regexp.QuoteMeta(countryCode), localNumberDigits))
}
