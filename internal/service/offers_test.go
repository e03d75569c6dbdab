package service

import (
    "context"
    "errors"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/event-wristbands/internal/model"
)

type fakeLister struct {
    active []model.Wristband
    err    error
}

func (f *fakeLister) ActiveByEvent(ctx context.Context, eventID uint64) ([]model.Wristband, error) {
    return f.active, f.err
}

func wb(id uint64, accessType, price string, status model.Status) model.Wristband {
    return model.Wristband{
        ID:         id,
        EventID:    9,
        Code:       "WB-0001",
        AccessType: accessType,
        Price:      price,
        Status:     status,
        CreatedAt:  time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
    }
}

func TestDeriveTicketOffersPerWristbandGrouping(t *testing.T) {
    // Two active VIP wristbands at the same price stay two distinct offers
    // because the wristband id is part of the grouping key. The used
    // General wristband never becomes an offer: even though its 50 would
    // sort first, it is skipped before grouping regardless of what the
    // lister returned.
    lister := &fakeLister{active: []model.Wristband{
        wb(1, "VIP", "100.00", model.StatusActive),
        wb(2, "VIP", "100.00", model.StatusActive),
        wb(3, "General", "50.00", model.StatusUsed),
    }}
    svc := NewOffers(lister)

    offers, err := svc.DeriveTicketOffers(context.Background(), 9)

    require.NoError(t, err)
    require.Len(t, offers, 2, "used wristbands must be excluded")
    assert.Equal(t, uint64(1), offers[0].WristbandID, "scan order kept between equal prices")
    assert.Equal(t, uint64(2), offers[1].WristbandID)
    for _, o := range offers {
        assert.Equal(t, "VIP", o.AccessType)
        assert.Equal(t, 100.0, o.Price)
        assert.Equal(t, 1, o.Available)
    }
}

func TestDeriveTicketOffersSkipsNonActive(t *testing.T) {
    for _, status := range []model.Status{model.StatusUsed, model.StatusLost, model.StatusCancelled, model.StatusPending} {
        t.Run(string(status), func(t *testing.T) {
            lister := &fakeLister{active: []model.Wristband{
                wb(1, "VIP", "100.00", status),
                wb(2, "General", "50.00", model.StatusActive),
            }}
            svc := NewOffers(lister)

            offers, err := svc.DeriveTicketOffers(context.Background(), 9)

            require.NoError(t, err)
            require.Len(t, offers, 1)
            assert.Equal(t, "General", offers[0].AccessType)
        })
    }
}

func TestDeriveTicketOffersSortedByPrice(t *testing.T) {
    lister := &fakeLister{active: []model.Wristband{
        wb(1, "VIP", "150.00", model.StatusActive),
        wb(2, "General", "50.00", model.StatusActive),
        wb(3, "Backstage", "250.00", model.StatusActive),
    }}
    svc := NewOffers(lister)

    offers, err := svc.DeriveTicketOffers(context.Background(), 9)

    require.NoError(t, err)
    require.Len(t, offers, 3)
    assert.Equal(t, []float64{50, 150, 250}, []float64{offers[0].Price, offers[1].Price, offers[2].Price})
}

func TestDeriveTicketOffersMalformedPrice(t *testing.T) {
    tests := []struct {
        name  string
        price string
        want  float64
    }{
        {"empty", "", 0},
        {"garbage", "abc", 0},
        {"trailing text", "10,50", 0},
        {"padded decimal", " 25.50 ", 25.5},
        {"plain decimal", "99.90", 99.9},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            lister := &fakeLister{active: []model.Wristband{wb(1, "VIP", tt.price, model.StatusActive)}}
            svc := NewOffers(lister)

            offers, err := svc.DeriveTicketOffers(context.Background(), 9)

            require.NoError(t, err, "a dirty price must not fail the aggregation")
            require.Len(t, offers, 1)
            assert.Equal(t, tt.want, offers[0].Price)
        })
    }
}

func TestDeriveTicketOffersEmptyEvent(t *testing.T) {
    svc := NewOffers(&fakeLister{})

    offers, err := svc.DeriveTicketOffers(context.Background(), 9)

    require.NoError(t, err)
    assert.Empty(t, offers)
}

func TestDeriveTicketOffersErrors(t *testing.T) {
    svc := NewOffers(&fakeLister{err: errors.New("store down")})

    _, err := svc.DeriveTicketOffers(context.Background(), 9)
    assert.Error(t, err)

    _, err = svc.DeriveTicketOffers(context.Background(), 0)
    assert.ErrorIs(t, err, ErrInvalidEvent)
}
