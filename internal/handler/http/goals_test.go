package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/apereira/controle-gastos/internal/service"
	"github.com/apereira/controle-gastos/internal/store"
	"github.com/apereira/controle-gastos/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock GoalService
// ─────────────────────────────────────────────

type mockGoalService struct {
	upsertGoalFn func(ctx context.Context, goal models.Goal) (models.Goal, bool, error)
	listGoalsFn  func(ctx context.Context, userID int64) ([]models.Goal, error)
	getGoalFn    func(ctx context.Context, userID int64, ano, mes int) (models.Goal, error)
}

func (m *mockGoalService) UpsertGoal(ctx context.Context, goal models.Goal) (models.Goal, bool, error) {
	return m.upsertGoalFn(ctx, goal)
}

func (m *mockGoalService) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	return m.listGoalsFn(ctx, userID)
}

func (m *mockGoalService) GetGoal(ctx context.Context, userID int64, ano, mes int) (models.Goal, error) {
	return m.getGoalFn(ctx, userID, ano, mes)
}

// ─────────────────────────────────────────────
// POST /metas
// ─────────────────────────────────────────────

func TestUpsertGoal_Created(t *testing.T) {
	goalSvc := &mockGoalService{
		upsertGoalFn: func(_ context.Context, goal models.Goal) (models.Goal, bool, error) {
			goal.ID = 3
			return goal, true, nil
		},
	}

	router := newTestRouter(t, &service.Services{GoalService: goalSvc})
	req := httptest.NewRequest(http.MethodPost, "/metas",
		strings.NewReader(`{"user_id":1,"ano":2025,"mes":9,"valor":1000}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Meta criada com sucesso!", body["message"])

	meta, ok := body["meta"].(map[string]any)
	require.True(t, ok, "response must carry the goal under the meta key")
	assert.Equal(t, float64(1), meta["user_id"])
	assert.Equal(t, float64(2025), meta["ano"])
	assert.Equal(t, float64(9), meta["mes"])
	assert.Equal(t, float64(1000), meta["valor"])
	assert.NotContains(t, meta, "id")
}

func TestUpsertGoal_Updated(t *testing.T) {
	goalSvc := &mockGoalService{
		upsertGoalFn: func(_ context.Context, goal models.Goal) (models.Goal, bool, error) {
			goal.ID = 3
			return goal, false, nil
		},
	}

	router := newTestRouter(t, &service.Services{GoalService: goalSvc})
	req := httptest.NewRequest(http.MethodPost, "/metas",
		strings.NewReader(`{"user_id":1,"ano":2025,"mes":9,"valor":1500}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Meta atualizada com sucesso!", body["message"])
}

func TestUpsertGoal_MissingFields(t *testing.T) {
	router := newTestRouter(t, &service.Services{GoalService: &mockGoalService{}})
	req := httptest.NewRequest(http.MethodPost, "/metas",
		strings.NewReader(`{"user_id":1,"ano":2025}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Campos 'user_id', 'ano', 'mes' e 'valor' são obrigatórios", body["erro"])
}

func TestUpsertGoal_InvalidMonth(t *testing.T) {
	goalSvc := &mockGoalService{
		upsertGoalFn: func(_ context.Context, _ models.Goal) (models.Goal, bool, error) {
			return models.Goal{}, false, service.ErrInvalidMonth
		},
	}

	router := newTestRouter(t, &service.Services{GoalService: goalSvc})
	req := httptest.NewRequest(http.MethodPost, "/metas",
		strings.NewReader(`{"user_id":1,"ano":2025,"mes":13,"valor":1000}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Mês deve estar entre 1 e 12", body["erro"])
}

// ─────────────────────────────────────────────
// GET /metas
// ─────────────────────────────────────────────

func TestListGoals_Success(t *testing.T) {
	goalSvc := &mockGoalService{
		listGoalsFn: func(_ context.Context, userID int64) ([]models.Goal, error) {
			assert.Equal(t, int64(1), userID)
			return []models.Goal{
				{ID: 3, UserID: 1, Ano: 2025, Mes: 9, Valor: 1000},
				{ID: 4, UserID: 1, Ano: 2025, Mes: 10, Valor: 1200},
			}, nil
		},
	}

	router := newTestRouter(t, &service.Services{GoalService: goalSvc})
	req := httptest.NewRequest(http.MethodGet, "/metas?user_id=1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// the listing carries (ano, mes, valor) triples only
	assert.JSONEq(t,
		`{"metas":[{"ano":2025,"mes":9,"valor":1000},{"ano":2025,"mes":10,"valor":1200}]}`,
		rec.Body.String())
}

func TestListGoals_MissingUserIDParam(t *testing.T) {
	router := newTestRouter(t, &service.Services{GoalService: &mockGoalService{}})
	req := httptest.NewRequest(http.MethodGet, "/metas", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Query param 'user_id' é obrigatório", body["erro"])
}

// ─────────────────────────────────────────────
// GET /metas/{ano}/{mes}
// ─────────────────────────────────────────────

func TestGetGoal_Success(t *testing.T) {
	goalSvc := &mockGoalService{
		getGoalFn: func(_ context.Context, userID int64, ano, mes int) (models.Goal, error) {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, 2025, ano)
			assert.Equal(t, 9, mes)
			return models.Goal{ID: 3, UserID: 1, Ano: 2025, Mes: 9, Valor: 1000}, nil
		},
	}

	router := newTestRouter(t, &service.Services{GoalService: goalSvc})
	req := httptest.NewRequest(http.MethodGet, "/metas/2025/9?user_id=1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"meta":{"user_id":1,"ano":2025,"mes":9,"valor":1000}}`,
		rec.Body.String())
}

func TestGetGoal_NotFound(t *testing.T) {
	goalSvc := &mockGoalService{
		getGoalFn: func(_ context.Context, _ int64, _, _ int) (models.Goal, error) {
			return models.Goal{}, store.ErrGoalNotFound
		},
	}

	router := newTestRouter(t, &service.Services{GoalService: goalSvc})
	req := httptest.NewRequest(http.MethodGet, "/metas/2025/12?user_id=1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Meta não encontrada", body["erro"])
}
