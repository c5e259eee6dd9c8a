// README: Validator tests covering mode branches, allow-list, and usage caps.
package promo

import (
	"context"
	"errors"
	"testing"
	"time"

	"dispatch/internal/config"
	"dispatch/internal/types"
)

// stubSource is a test double for Source.
type stubSource struct {
	promos     []Promo
	listed     bool
	usageCount int
}

func (s *stubSource) FindByCode(_ context.Context, code string, _ types.ID) ([]Promo, error) {
	var out []Promo
	for _, p := range s.promos {
		if p.Code == code {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubSource) IsUserListed(_ context.Context, _, _, _ types.ID) (bool, error) {
	return s.listed, nil
}

func (s *stubSource) UsageCount(_ context.Context, _, _ types.ID) (int, error) {
	return s.usageCount, nil
}

func validPromo() Promo {
	return Promo{
		ID:              "promo1",
		Code:            "SAVE20",
		DiscountPercent: 20,
		To:              time.Now().Add(48 * time.Hour),
		Active:          true,
		TransportType:   TransportTaxi,
		UsesPerUser:     3,
	}
}

func TestValidate_NoCodeIsNotAnError(t *testing.T) {
	svc := NewService(&stubSource{}, config.ModeTaxi)
	p, err := svc.Validate(context.Background(), "", "loc1", "", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil promo for empty code, got %+v", p)
	}
}

func TestValidate_UnknownCode(t *testing.T) {
	svc := NewService(&stubSource{}, config.ModeTaxi)
	_, err := svc.Validate(context.Background(), "NOPE", "loc1", "", "u1")
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate_Expired(t *testing.T) {
	p := validPromo()
	p.To = time.Now().Add(-48 * time.Hour)
	svc := NewService(&stubSource{promos: []Promo{p}}, config.ModeTaxi)
	_, err := svc.Validate(context.Background(), "SAVE20", "loc1", "", "u1")
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for expired promo, got %v", err)
	}
}

func TestValidate_TaxiModeIgnoresActiveAndTransport(t *testing.T) {
	// The taxi/delivery branch checks expiry only: an inactive promo scoped to
	// another transport type still validates.
	p := validPromo()
	p.Active = false
	p.TransportType = TransportDelivery
	svc := NewService(&stubSource{promos: []Promo{p}}, config.ModeTaxi)
	got, err := svc.Validate(context.Background(), "SAVE20", "loc1", TransportTaxi, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ID != "promo1" {
		t.Fatalf("expected promo1, got %+v", got)
	}
}

func TestValidate_TransportModeChecksActive(t *testing.T) {
	p := validPromo()
	p.Active = false
	svc := NewService(&stubSource{promos: []Promo{p}}, config.ModeTransport)
	_, err := svc.Validate(context.Background(), "SAVE20", "loc1", TransportTaxi, "u1")
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for inactive promo, got %v", err)
	}
}

func TestValidate_TransportModeMatchesTransportType(t *testing.T) {
	cases := []struct {
		name      string
		promoType TransportType
		caller    TransportType
		wantOK    bool
	}{
		{"exact match", TransportTaxi, TransportTaxi, true},
		{"both matches taxi", TransportBoth, TransportTaxi, true},
		{"both matches delivery", TransportBoth, TransportDelivery, true},
		{"mismatch", TransportDelivery, TransportTaxi, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPromo()
			p.TransportType = tc.promoType
			svc := NewService(&stubSource{promos: []Promo{p}}, config.ModeTransport)
			got, err := svc.Validate(context.Background(), "SAVE20", "loc1", tc.caller, "u1")
			if tc.wantOK {
				if err != nil || got == nil {
					t.Fatalf("expected valid promo, got (%+v, %v)", got, err)
				}
				return
			}
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestValidate_AllowList(t *testing.T) {
	p := validPromo()
	p.RestrictedToListedUsers = true

	svc := NewService(&stubSource{promos: []Promo{p}, listed: false}, config.ModeTaxi)
	if _, err := svc.Validate(context.Background(), "SAVE20", "loc1", "", "u1"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for unlisted user, got %v", err)
	}

	svc = NewService(&stubSource{promos: []Promo{p}, listed: true}, config.ModeTaxi)
	if _, err := svc.Validate(context.Background(), "SAVE20", "loc1", "", "u1"); err != nil {
		t.Fatalf("expected listed user to validate, got %v", err)
	}
}

func TestValidate_UsageCap(t *testing.T) {
	p := validPromo() // UsesPerUser: 3
	cases := []struct {
		used   int
		wantOK bool
	}{
		{0, true},
		{2, true},
		{3, false}, // at the cap counts as exceeded
		{5, false},
	}
	for _, tc := range cases {
		svc := NewService(&stubSource{promos: []Promo{p}, usageCount: tc.used}, config.ModeTaxi)
		_, err := svc.Validate(context.Background(), "SAVE20", "loc1", "", "u1")
		if tc.wantOK && err != nil {
			t.Errorf("used=%d: unexpected error %v", tc.used, err)
		}
		if !tc.wantOK && !errors.Is(err, ErrInvalid) {
			t.Errorf("used=%d: expected ErrInvalid, got %v", tc.used, err)
		}
	}
}

func TestValidate_SkipsIneligibleRowForEligibleOne(t *testing.T) {
	// Codes are not unique: an expired row must not shadow a live one.
	expired := validPromo()
	expired.ID = "old"
	expired.To = time.Now().Add(-48 * time.Hour)
	live := validPromo()
	live.ID = "new"

	svc := NewService(&stubSource{promos: []Promo{expired, live}}, config.ModeTaxi)
	got, err := svc.Validate(context.Background(), "SAVE20", "loc1", "", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "new" {
		t.Fatalf("expected live row, got %s", got.ID)
	}
}
