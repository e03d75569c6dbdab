package handler

import (
    "context"
    "errors"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/event-wristbands/internal/model"
    "github.com/iliyamo/event-wristbands/internal/service"
)

type stubWristbandStore struct {
    ids       []uint64
    updateErr error
}

func (s *stubWristbandStore) IDsByEvent(ctx context.Context, eventID uint64) ([]uint64, error) {
    return s.ids, nil
}

func (s *stubWristbandStore) UpdateStatusByEvent(ctx context.Context, eventID uint64, status model.Status) error {
    return s.updateErr
}

type stubAnalyticsStore struct {
    sold int64
}

func (s *stubAnalyticsStore) SoldCountByEvent(ctx context.Context, eventID uint64) (int64, error) {
    return s.sold, nil
}

func (s *stubAnalyticsStore) UpdateStatusByWristbandIDs(ctx context.Context, ids []uint64, status model.Status) error {
    return nil
}

func newTransitionHandler(ids []uint64, sold int64) *WristbandHandler {
    svc := service.NewTransition(&stubWristbandStore{ids: ids}, &stubAnalyticsStore{sold: sold}, nil)
    return &WristbandHandler{Transition: svc}
}

func doMassTransition(t *testing.T, h *WristbandHandler, body string, principal *model.Principal) *httptest.ResponseRecorder {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodPost, "/v1/wristbands/mass-status", strings.NewReader(body))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    if principal != nil {
        c.Set("principal", *principal)
    }
    require.NoError(t, h.MassTransition(c))
    return rec
}

func TestMassTransitionSuccess(t *testing.T) {
    h := newTransitionHandler([]uint64{1, 2, 3}, 0)
    p := model.Principal{UserID: 1, Role: model.RolePlatformAdmin, Scope: model.Scope{All: true}}

    rec := doMassTransition(t, h, `{"event_id": 9, "new_status": "used"}`, &p)

    assert.Equal(t, http.StatusOK, rec.Code)
    assert.JSONEq(t, `{"message":"wristbands updated","count":3}`, rec.Body.String())
}

func TestMassTransitionStringEventID(t *testing.T) {
    h := newTransitionHandler([]uint64{1}, 0)
    p := model.Principal{UserID: 1, Role: model.RolePlatformAdmin, Scope: model.Scope{All: true}}

    rec := doMassTransition(t, h, `{"event_id": "9", "new_status": "used"}`, &p)

    assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMassTransitionZeroWristbands(t *testing.T) {
    h := newTransitionHandler(nil, 0)
    p := model.Principal{UserID: 1, Role: model.RolePlatformAdmin, Scope: model.Scope{All: true}}

    rec := doMassTransition(t, h, `{"event_id": 9, "new_status": "cancelled"}`, &p)

    assert.Equal(t, http.StatusOK, rec.Code, "an empty event is a trivial success, not an error")
    assert.JSONEq(t, `{"message":"wristbands updated","count":0}`, rec.Body.String())
}

func TestMassTransitionBadRequests(t *testing.T) {
    p := model.Principal{UserID: 1, Role: model.RolePlatformAdmin, Scope: model.Scope{All: true}}
    tests := []struct {
        name string
        body string
    }{
        {"empty body", `{}`},
        {"missing status", `{"event_id": 9}`},
        {"missing event", `{"new_status": "used"}`},
        {"zero event", `{"event_id": 0, "new_status": "used"}`},
        {"garbage event", `{"event_id": "abc", "new_status": "used"}`},
        {"fractional event", `{"event_id": 9.5, "new_status": "used"}`},
        {"unknown status", `{"event_id": 9, "new_status": "burned"}`},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            h := newTransitionHandler([]uint64{1}, 0)
            rec := doMassTransition(t, h, tt.body, &p)
            assert.Equal(t, http.StatusBadRequest, rec.Code)
        })
    }
}

func TestMassTransitionForbidden(t *testing.T) {
    tests := []struct {
        name      string
        principal model.Principal
        sold      int64
        body      string
        wantBody  string
    }{
        {
            "client role",
            model.Principal{UserID: 3, Role: model.RoleClient},
            0,
            `{"event_id": 9, "new_status": "used"}`,
            `{"error":"forbidden"}`,
        },
        {
            "manager outside scope",
            model.Principal{UserID: 2, Role: model.RoleEventManager, Scope: model.Scope{EventIDs: []uint64{4}}},
            0,
            `{"event_id": 9, "new_status": "used"}`,
            `{"error":"forbidden"}`,
        },
        {
            "sold inventory conflict",
            model.Principal{UserID: 1, Role: model.RolePlatformAdmin, Scope: model.Scope{All: true}},
            2,
            `{"event_id": 9, "new_status": "cancelled"}`,
            `{"error":"sold wristbands present"}`,
        },
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            h := newTransitionHandler([]uint64{1, 2}, tt.sold)
            rec := doMassTransition(t, h, tt.body, &tt.principal)
            assert.Equal(t, http.StatusForbidden, rec.Code)
            assert.JSONEq(t, tt.wantBody, rec.Body.String())
        })
    }
}

func TestMassTransitionInternalError(t *testing.T) {
    svc := service.NewTransition(
        &stubWristbandStore{ids: []uint64{1}, updateErr: errors.New("deadlock")},
        &stubAnalyticsStore{},
        nil,
    )
    h := &WristbandHandler{Transition: svc}
    p := model.Principal{UserID: 1, Role: model.RolePlatformAdmin, Scope: model.Scope{All: true}}

    rec := doMassTransition(t, h, `{"event_id": 9, "new_status": "used"}`, &p)

    assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMassTransitionMissingPrincipal(t *testing.T) {
    h := newTransitionHandler([]uint64{1}, 0)

    rec := doMassTransition(t, h, `{"event_id": 9, "new_status": "used"}`, nil)

    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCoerceEventID(t *testing.T) {
    tests := []struct {
        name string
        in   interface{}
        want uint64
        ok   bool
    }{
        {"number", float64(42), 42, true},
        {"numeric string", "42", 42, true},
        {"zero number", float64(0), 0, false},
        {"negative number", float64(-3), 0, false},
        {"fractional number", float64(9.5), 0, false},
        {"garbage string", "abc", 0, false},
        {"bool", true, 0, false},
        {"nil", nil, 0, false},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            got, ok := coerceEventID(tt.in)
            assert.Equal(t, tt.ok, ok)
            assert.Equal(t, tt.want, got)
        })
    }
}
