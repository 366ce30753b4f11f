package ledger

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"loyalty/internal/domain/authz"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
)

const (
	utoridLength  = 8
	maxNameLength = 50
)

var utoridPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// ValidateUtorid checks the 8 character alphanumeric handle.
func ValidateUtorid(utorid string) error {
	if len(utorid) != utoridLength || !utoridPattern.MatchString(utorid) {
		return domainerrors.ErrValidationFailed.WithDetails("utorid must be 8 alphanumeric characters")
	}

	return nil
}

// ValidateName checks a display name.
func ValidateName(name string) error {
	if n := utf8.RuneCountInString(name); n < 1 || n > maxNameLength {
		return domainerrors.ErrValidationFailed.WithDetails("name must be 1-50 characters")
	}

	return nil
}

// ValidateEmail requires a non-empty local part in the university domain.
func ValidateEmail(email, domain string) error {
	suffix := "@" + domain
	if len(email) <= len(suffix) || !strings.HasSuffix(email, suffix) {
		return domainerrors.ErrValidationFailed.WithDetails("email must be a valid " + domain + " address")
	}

	return nil
}

// ValidateBirthday requires a real calendar date written as YYYY-MM-DD.
func ValidateBirthday(birthday string) error {
	if _, err := time.Parse(time.DateOnly, birthday); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("birthday must be a valid YYYY-MM-DD date")
	}

	return nil
}

// NewRegisteredUser builds an unverified regular account.
func NewRegisteredUser(utorid, name, email, domain string) (*entity.User, error) {
	if err := ValidateUtorid(utorid); err != nil {
		return nil, err
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email, domain); err != nil {
		return nil, err
	}

	return &entity.User{
		Utorid: utorid,
		Name:   name,
		Email:  email,
		Role:   entity.RoleRegular,
	}, nil
}

// UserPatch holds the fields a manager may change on another account.
type UserPatch struct {
	Email      *string
	Verified   *bool
	Suspicious *bool
	Role       *entity.Role
}

// ApplyUserPatch validates patch against the acting role and applies it.
// Verification is one way, cashiers cannot be marked suspicious, and
// managers may only hand out the cashier and regular roles.
func ApplyUserPatch(user *entity.User, patch UserPatch, actorRole entity.Role, emailDomain string) error {
	if patch.Email == nil && patch.Verified == nil && patch.Suspicious == nil && patch.Role == nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body cannot be empty")
	}
	if patch.Email != nil {
		if err := ValidateEmail(*patch.Email, emailDomain); err != nil {
			return err
		}
	}
	if patch.Verified != nil && !*patch.Verified {
		return domainerrors.ErrValidationFailed.WithDetails("verified can only be set to true")
	}
	if patch.Role != nil {
		if !patch.Role.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("role must be regular, cashier, manager or superuser")
		}
		if *patch.Role == entity.RoleCashier && patch.Suspicious != nil && *patch.Suspicious {
			return domainerrors.ErrValidationFailed.WithDetails("a cashier cannot be suspicious")
		}
		if !authz.CanAssignRole(actorRole, *patch.Role) {
			return domainerrors.ErrForbidden.WithDetails("role can only be cashier or regular")
		}
	}

	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Verified != nil {
		user.Verified = true
	}
	if patch.Suspicious != nil {
		user.Suspicious = *patch.Suspicious
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}

	return nil
}

// AvailablePromotions keeps the one-time promotions the user has not consumed yet.
func AvailablePromotions(user *entity.User, promotions []*entity.Promotion) []*entity.Promotion {
	available := make([]*entity.Promotion, 0, len(promotions))
	for _, p := range promotions {
		if p.Type == entity.PromotionOneTime && !user.HasUsed(p.ID) {
			available = append(available, p)
		}
	}

	return available
}
