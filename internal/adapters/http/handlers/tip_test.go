package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/ecotips/internal/adapters/catalog"
	"github.com/jsamuelsen/ecotips/internal/adapters/http/dto"
	"github.com/jsamuelsen/ecotips/internal/app"
	"github.com/jsamuelsen/ecotips/internal/domain"
	"github.com/jsamuelsen/ecotips/internal/mocks"
	"github.com/jsamuelsen/ecotips/internal/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTipRouter(tb testing.TB, repo ports.TipRepository) *gin.Engine {
	tb.Helper()

	svc := app.NewTipService(app.TipServiceConfig{Repo: repo, Logger: discardLogger()})

	router := gin.New()
	NewTipHandler(svc).RegisterTipRoutes(router.Group("/api/v1"))

	return router
}

func embeddedRouter(tb testing.TB) *gin.Engine {
	tb.Helper()

	repo, err := catalog.New(catalog.Config{Logger: discardLogger()})
	require.NoError(tb, err)

	return newTipRouter(tb, repo)
}

func decodeTips(t *testing.T, w *httptest.ResponseRecorder) []dto.TipResponse {
	t.Helper()

	var tips []dto.TipResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tips))

	return tips
}

func ids(tips []dto.TipResponse) []int {
	out := make([]int, 0, len(tips))
	for _, tip := range tips {
		out = append(out, tip.ID)
	}

	return out
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func TestTipHandler_ListTips(t *testing.T) {
	w := get(embeddedRouter(t), "/api/v1/tips")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, ids(decodeTips(t, w)))
	assert.Contains(t, w.Body.String(), `"shortDescription"`)
	assert.Contains(t, w.Body.String(), `"timeToImplement"`)
}

func TestTipHandler_GetTip(t *testing.T) {
	router := embeddedRouter(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCode   string
	}{
		{"existing", "/api/v1/tips/4", http.StatusOK, ""},
		{"unknown", "/api/v1/tips/999", http.StatusNotFound, dto.ErrorCodeNotFound},
		{"zero", "/api/v1/tips/0", http.StatusBadRequest, dto.ErrorCodeBadRequest},
		{"negative", "/api/v1/tips/-3", http.StatusBadRequest, dto.ErrorCodeBadRequest},
		{"not a number", "/api/v1/tips/abc", http.StatusBadRequest, dto.ErrorCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(router, tt.path)

			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Error.Code)
				return
			}

			var tip dto.TipResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tip))
			assert.Equal(t, "Plant a Native Species Garden", tip.Title)
			assert.Equal(t, "Biodiversity", tip.Category)
		})
	}
}

func TestTipHandler_ListByCategory(t *testing.T) {
	router := embeddedRouter(t)

	tests := []struct {
		path string
		want []int
	}{
		{"/api/v1/tips/category/energy", []int{2, 7}},
		{"/api/v1/tips/category/waste-reduction", []int{1, 3}},
		{"/api/v1/tips/category/Water%20Conservation", []int{5}},
		{"/api/v1/tips/category/space-travel", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(router, tt.path)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, ids(decodeTips(t, w)))
		})
	}
}

func TestTipHandler_Search(t *testing.T) {
	router := embeddedRouter(t)

	tests := []struct {
		name  string
		query string
		check func(*testing.T, []int)
	}{
		{"no parameters", "", func(t *testing.T, got []int) {
			assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, got)
		}},
		{"category filter", "?category=energy", func(t *testing.T, got []int) {
			assert.Equal(t, []int{2, 7}, got)
		}},
		{"impact filter", "?impact=very-high", func(t *testing.T, got []int) {
			assert.Equal(t, []int{2, 6}, got)
		}},
		{"difficulty is case-insensitive", "?difficulty=advanced", func(t *testing.T, got []int) {
			assert.Equal(t, []int{7}, got)
		}},
		{"unknown impact matches nothing", "?impact=extreme", func(t *testing.T, got []int) {
			assert.Empty(t, got)
		}},
		{"text puts title hits first", "?q=compost", func(t *testing.T, got []int) {
			require.NotEmpty(t, got)
			assert.Equal(t, 1, got[0])
		}},
		{"filters combine", "?q=energy&category=energy&difficulty=Advanced", func(t *testing.T, got []int) {
			assert.Equal(t, []int{7}, got)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(router, "/api/v1/tips/search"+tt.query)

			require.Equal(t, http.StatusOK, w.Code)
			tt.check(t, ids(decodeTips(t, w)))
		})
	}
}

func TestTipHandler_Search_Validation(t *testing.T) {
	w := get(embeddedRouter(t), "/api/v1/tips/search?q="+strings.Repeat("x", dto.MaxQueryLength+1))

	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "q")
}

func TestTipHandler_Related(t *testing.T) {
	router := embeddedRouter(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantIDs    []int
	}{
		{"same category", "/api/v1/tips/2/related", http.StatusOK, []int{7}},
		{"limit", "/api/v1/tips/1/related?limit=1", http.StatusOK, []int{3}},
		{"only tip in category", "/api/v1/tips/4/related", http.StatusOK, []int{}},
		{"unknown tip", "/api/v1/tips/999/related", http.StatusNotFound, nil},
		{"bad id", "/api/v1/tips/x/related", http.StatusBadRequest, nil},
		{"limit too large", "/api/v1/tips/1/related?limit=11", http.StatusBadRequest, nil},
		{"limit not a number", "/api/v1/tips/1/related?limit=many", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(router, tt.path)

			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantIDs != nil {
				assert.Equal(t, tt.wantIDs, ids(decodeTips(t, w)))
			}
		})
	}
}

func TestTipHandler_Stats(t *testing.T) {
	w := get(embeddedRouter(t), "/api/v1/tips/stats")

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.TipCount)
	assert.Equal(t, 4850, resp.CostSavingsUSD)
	assert.InDelta(t, 12.3, resp.CarbonReductionTons, 1e-9)
}

func TestTipHandler_GetTip_NotFoundFromRepository(t *testing.T) {
	repo := mocks.NewMockTipRepository(t)
	repo.EXPECT().GetByID(mock.Anything, 12).Return(domain.Tip{}, domain.NewTipNotFoundError(12))

	w := get(newTipRouter(t, repo), "/api/v1/tips/12")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeError(t, w).Error.Message, `tip with id "12" not found`)
}

func BenchmarkTipHandler_Search(b *testing.B) {
	router := embeddedRouter(b)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tips/search?q=energy&impact=high", nil)

	for b.Loop() {
		router.ServeHTTP(httptest.NewRecorder(), req)
	}
}

func BenchmarkTipHandler_ListTips(b *testing.B) {
	router := embeddedRouter(b)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tips", nil)

	for b.Loop() {
		router.ServeHTTP(httptest.NewRecorder(), req)
	}
}
