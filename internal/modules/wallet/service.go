// README: Wallet reader with the privileged-role exemption.
package wallet

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

// BalanceFor returns the balance quoted to the caller. Drivers and dispatchers
// are exempt from wallet charging and always quote with 0, as do users without
// a wallet row.
func (s *Service) BalanceFor(ctx context.Context, userID types.ID, role types.Role) (float64, error) {
	if role == types.RoleDriver || role == types.RoleDispatcher {
		return 0, nil
	}
	balance, ok, err := s.store.Balance(ctx, userID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return balance, nil
}
