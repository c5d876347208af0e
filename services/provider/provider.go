// File: services/provider/provider.go
package provider

import (
	"context"
	"errors"

	providerRepo "consultly/database/repository/provider"
	"consultly/models"
	"consultly/utils"
)

// ProviderService exposes the booking core's view of providers: profile
// reads and role-gated updates. Everything else about providers belongs to
// the identity subsystem.
type ProviderService interface {
	GetProvider(ctx context.Context, id string) (*models.Provider, error)
	UpdateProvider(ctx context.Context, id, callerID, callerRole string, patch models.ProviderPatch) (*models.Provider, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}

func (s *DefaultProviderService) GetProvider(ctx context.Context, id string) (*models.Provider, error) {
	prov, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, &utils.NotFoundError{Resource: "provider", ID: id}
		}
		return nil, err
	}
	return prov, nil
}

// UpdateProvider applies a patch. Providers may edit their own profile
// fields; isActive and isVerified are admin-only and rejected for anyone
// else, not silently stripped.
func (s *DefaultProviderService) UpdateProvider(ctx context.Context, id, callerID, callerRole string, patch models.ProviderPatch) (*models.Provider, error) {
	if callerRole != models.RoleAdmin && callerID != id {
		return nil, &utils.ForbiddenError{Message: "providers may only update their own profile"}
	}
	if callerRole != models.RoleAdmin && (patch.IsActive != nil || patch.IsVerified != nil) {
		return nil, &utils.ForbiddenError{Message: "only admins may set isActive or isVerified"}
	}

	prov, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, &utils.NotFoundError{Resource: "provider", ID: id}
		}
		return nil, err
	}

	if patch.Name != nil {
		prov.Name = *patch.Name
	}
	if patch.Capabilities != nil {
		prov.Capabilities = *patch.Capabilities
	}
	if patch.BasePrice != nil {
		if *patch.BasePrice < 0 {
			return nil, &utils.ValidationError{Field: "basePrice", Message: "must not be negative"}
		}
		prov.BasePrice = *patch.BasePrice
	}
	if patch.IsActive != nil {
		prov.IsActive = *patch.IsActive
	}
	if patch.IsVerified != nil {
		prov.IsVerified = *patch.IsVerified
	}

	if err := s.Repo.Update(ctx, prov); err != nil {
		return nil, err
	}
	return prov, nil
}
