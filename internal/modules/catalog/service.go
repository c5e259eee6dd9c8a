// README: Catalog service; thin read surface over the pricing store.
package catalog

import (
	"context"

	"dispatch/internal/types"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListPackages(ctx context.Context) ([]PackageType, error) {
	return s.store.ListPackages(ctx)
}

func (s *Service) GetPackage(ctx context.Context, id types.ID) (*PackageType, error) {
	return s.store.GetPackage(ctx, id)
}

func (s *Service) PriceRange(ctx context.Context, zoneID, packageTypeID types.ID) (PriceRange, bool, error) {
	return s.store.PriceRange(ctx, zoneID, packageTypeID)
}

func (s *Service) PricesForPackage(ctx context.Context, zoneID, packageTypeID types.ID) ([]TypePrice, error) {
	return s.store.PricesForPackage(ctx, zoneID, packageTypeID)
}
