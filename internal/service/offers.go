package service

import (
    "context"
    "sort"
    "strconv"
    "strings"

    "github.com/iliyamo/event-wristbands/internal/model"
)

// WristbandLister is the read slice the aggregator needs.
type WristbandLister interface {
    ActiveByEvent(ctx context.Context, eventID uint64) ([]model.Wristband, error)
}

// Offers derives purchasable ticket lines from the active wristbands of an
// event. The result is computed fresh on every call; nothing is cached
// between requests.
type Offers struct {
    wristbands WristbandLister
}

// NewOffers constructs the aggregator.
func NewOffers(wristbands WristbandLister) *Offers {
    if wristbands == nil {
        panic("nil store passed to NewOffers")
    }
    return &Offers{wristbands: wristbands}
}

type offerKey struct {
    accessType  string
    price       string
    wristbandID uint64
}

// DeriveTicketOffers groups the event's active wristbands by
// (access_type, price, wristband_id) and counts availability per group.
// Because the wristband id is part of the key, each physical wristband
// stays its own purchasable line instead of folding same-priced categories
// into one. Offers come back sorted by ascending price, ties kept in scan
// order.
func (s *Offers) DeriveTicketOffers(ctx context.Context, eventID uint64) ([]model.TicketOffer, error) {
    if eventID == 0 {
        return nil, ErrInvalidEvent
    }
    active, err := s.wristbands.ActiveByEvent(ctx, eventID)
    if err != nil {
        return nil, err
    }

    offers := make([]model.TicketOffer, 0, len(active))
    index := make(map[offerKey]int, len(active))
    for _, w := range active {
        // Only active wristbands are sellable; skip anything else even if
        // the lister handed it over.
        if w.Status != model.StatusActive {
            continue
        }
        key := offerKey{accessType: w.AccessType, price: w.Price, wristbandID: w.ID}
        if i, ok := index[key]; ok {
            offers[i].Available++
            continue
        }
        index[key] = len(offers)
        offers = append(offers, model.TicketOffer{
            AccessType:  w.AccessType,
            Price:       parsePrice(w.Price),
            WristbandID: w.ID,
            Available:   1,
        })
    }

    sort.SliceStable(offers, func(i, j int) bool { return offers[i].Price < offers[j].Price })
    return offers, nil
}

// parsePrice reads a decimal price as stored. This feeds a display
// aggregate, not a ledger; dirty values fall back to 0 instead of failing
// the whole aggregation.
func parsePrice(raw string) float64 {
    v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
    if err != nil {
        return 0
    }
    return v
}
