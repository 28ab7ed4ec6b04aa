package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/b4tman/stepik-storeapi/internal/domain"
)

// Service resolves credentials to a role against the identity directory
// and authorizes role-gated actions.
type Service struct {
	users userRepo
}

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

func New(users userRepo) *Service {
	return &Service{users: users}
}

// minRole is the permission table: the weakest role allowed to perform
// each action.
var minRole = map[domain.Action]domain.Role{
	domain.ActionBrowseProducts: domain.RoleCustomer,
	domain.ActionModifyCart:     domain.RoleCustomer,
	domain.ActionCheckout:       domain.RoleCustomer,
	domain.ActionUpdateProduct:  domain.RoleManager,
	domain.ActionCreateProduct:  domain.RoleAdmin,
}

// Authenticate resolves credentials to a role. Unknown emails and
// identities without a credential fail with ErrUnauthorized, as does a
// password mismatch.
func (s *Service) Authenticate(ctx context.Context, email, password string) (domain.Role, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrUnauthorized
		}
		return 0, fmt.Errorf("lookup user: %w", err)
	}
	if !u.Authenticate(password) {
		return 0, domain.ErrUnauthorized
	}
	return u.Role, nil
}

// Authorize checks the role against the permission table. Unknown
// actions are denied.
func (s *Service) Authorize(role domain.Role, action domain.Action) error {
	min, ok := minRole[action]
	if !ok || !role.AtLeast(min) {
		return domain.ErrForbidden
	}
	return nil
}

// Check authenticates credentials and authorizes the action in one step.
func (s *Service) Check(ctx context.Context, email, password string, action domain.Action) (domain.Role, error) {
	role, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return 0, err
	}
	if err := s.Authorize(role, action); err != nil {
		return 0, err
	}
	return role, nil
}
