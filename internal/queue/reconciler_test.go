package queue

import (
    "context"
    "errors"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

type stubResyncer struct {
    calls []uint64
    n     int64
    err   error
}

func (s *stubResyncer) ResyncFromWristbands(ctx context.Context, eventID uint64) (int64, error) {
    s.calls = append(s.calls, eventID)
    return s.n, s.err
}

func TestHandleReconcileMessage(t *testing.T) {
    store := &stubResyncer{n: 3}

    err := handleReconcileMessage([]byte(`{"event_id":9,"status":"used","failed_at":"2026-05-01T12:00:00Z"}`), store)

    require.NoError(t, err)
    assert.Equal(t, []uint64{9}, store.calls)
}

func TestHandleReconcileMessageBadPayloads(t *testing.T) {
    tests := []struct {
        name string
        body string
    }{
        {"not json", `not-json`},
        {"missing event id", `{"status":"used"}`},
        {"zero event id", `{"event_id":0}`},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            store := &stubResyncer{}
            err := handleReconcileMessage([]byte(tt.body), store)
            assert.Error(t, err)
            assert.Empty(t, store.calls, "bad payloads never reach the store")
        })
    }
}

func TestHandleReconcileMessageStoreFailure(t *testing.T) {
    store := &stubResyncer{err: errors.New("db down")}

    err := handleReconcileMessage([]byte(`{"event_id":9,"status":"used"}`), store)

    assert.Error(t, err, "store failures propagate so the message is rejected")
}
