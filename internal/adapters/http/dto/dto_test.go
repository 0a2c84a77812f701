package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/ecotips/internal/domain"
	"github.com/jsamuelsen/ecotips/internal/domain/search"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)

	return c, w
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrorCodeNotFound, "tip not found").WithTraceID("abc")

	assert.Equal(t, ErrorCodeNotFound, resp.Error.Code)
	assert.Equal(t, "tip not found", resp.Error.Message)
	assert.Nil(t, resp.Error.Details)
	assert.Equal(t, "abc", resp.TraceID)

	withDetails := NewErrorResponseWithDetails(ErrorCodeValidation, "bad", map[string]string{"q": "too long"})
	assert.Equal(t, map[string]string{"q": "too long"}, withDetails.Error.Details)
}

func TestErrorResponse_JSONShape(t *testing.T) {
	body, err := json.Marshal(NewErrorResponse(ErrorCodeBadRequest, "invalid tip id"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"error":{"code":"BAD_REQUEST","message":"invalid tip id"}}`, string(body))
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := map[string]int{
		ErrorCodeNotFound:    http.StatusNotFound,
		ErrorCodeConflict:    http.StatusConflict,
		ErrorCodeValidation:  http.StatusBadRequest,
		ErrorCodeBadRequest:  http.StatusBadRequest,
		ErrorCodeUnavailable: http.StatusServiceUnavailable,
		ErrorCodeTimeout:     http.StatusGatewayTimeout,
		ErrorCodeInternal:    http.StatusInternalServerError,
		"SOMETHING_ELSE":     http.StatusInternalServerError,
	}

	for code, want := range tests {
		t.Run(code, func(t *testing.T) {
			assert.Equal(t, want, HTTPStatusFromCode(code))
		})
	}
}

func TestFromDomainError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails map[string]string
	}{
		{"not found", domain.NewTipNotFoundError(42), http.StatusNotFound, ErrorCodeNotFound, nil},
		{"wrapped not found", fmt.Errorf("loading tip: %w", domain.NewTipNotFoundError(42)), http.StatusNotFound, ErrorCodeNotFound, nil},
		{"conflict", domain.NewConflictError("tip", "duplicate id"), http.StatusConflict, ErrorCodeConflict, nil},
		{"validation", domain.NewValidationError("limit", "must be at most 10"), http.StatusBadRequest, ErrorCodeValidation, map[string]string{"limit": "must be at most 10"}},
		{"unavailable", domain.NewUnavailableError("tips-api", "connection refused"), http.StatusServiceUnavailable, ErrorCodeUnavailable, nil},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ErrorCodeInternal, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := FromDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantDetails, resp.Error.Details)
		})
	}

	t.Run("nil", func(t *testing.T) {
		status, resp := FromDomainError(nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Nil(t, resp)
	})

	t.Run("internal details are hidden", func(t *testing.T) {
		_, resp := FromDomainError(errors.New("pq: password authentication failed"))
		assert.NotContains(t, resp.Error.Message, "password")
	})
}

func TestGetTraceID(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*gin.Context)
		want  string
	}{
		{"from context", func(c *gin.Context) { c.Set("trace_id", "ctx-1") }, "ctx-1"},
		{"from request id header", func(c *gin.Context) { c.Request.Header.Set("X-Request-ID", "hdr-2") }, "hdr-2"},
		{"context wins", func(c *gin.Context) {
			c.Set("trace_id", "ctx-1")
			c.Request.Header.Set("X-Request-ID", "hdr-2")
		}, "ctx-1"},
		{"wrong type", func(c *gin.Context) { c.Set("trace_id", 7) }, ""},
		{"absent", func(*gin.Context) {}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext("/")
			tt.setup(c)

			assert.Equal(t, tt.want, GetTraceID(c))
		})
	}
}

func TestHandleError(t *testing.T) {
	c, w := newTestContext("/api/v1/tips/999")
	c.Set("trace_id", "trace-404")

	HandleError(c, domain.NewTipNotFoundError(999))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrorCodeNotFound, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, `tip with id "999" not found`)
	assert.Equal(t, "trace-404", resp.TraceID)
}

func TestHandleError_Nil(t *testing.T) {
	c, w := newTestContext("/")

	HandleError(c, nil)

	assert.Empty(t, w.Body.String())
}

func TestAbort(t *testing.T) {
	c, w := newTestContext("/")

	Abort(c, ErrorCodeBadRequest, "invalid tip id")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid tip id")
}

func TestNewTipResponse(t *testing.T) {
	tip := domain.Tip{
		ID:         3,
		Title:      "Reduce Meat Consumption",
		Category:   "Food",
		Impact:     domain.ImpactHigh,
		Difficulty: domain.DifficultyBeginner,
		Tags:       []string{"diet"},
	}

	got := NewTipResponse(&tip)

	assert.Equal(t, 3, got.ID)
	assert.Equal(t, "High", got.Impact)
	assert.Equal(t, "Beginner", got.Difficulty)
	assert.Equal(t, []string{"diet"}, got.Tags)
	assert.NotNil(t, got.Steps)
	assert.Empty(t, got.Steps)

	body, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"shortDescription":""`)
	assert.Contains(t, string(body), `"steps":[]`)
}

func TestNewTipListResponse_Empty(t *testing.T) {
	got := NewTipListResponse(nil)

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearchRequest(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    search.Params
		wantErr error
	}{
		{
			name:  "all parameters",
			query: "?q=Solar&category=Zero%20Waste&difficulty=Beginner&impact=very-high",
			want:  search.Params{Text: "solar", Category: "zero-waste", Difficulty: "Beginner", Impact: "very-high"},
		},
		{
			name:  "no parameters",
			query: "",
			want:  search.Params{},
		},
		{
			name:  "blank text is absent",
			query: "?q=%20%20",
			want:  search.Params{},
		},
		{
			name:    "oversize text",
			query:   "?q=" + strings.Repeat("a", MaxQueryLength+1),
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext("/api/v1/tips/search" + tt.query)

			var req SearchRequest
			err := BindQueryAndValidate(c, &req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, ValidationErrors(err), "q")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, search.NewQuery(tt.want), req.Query())
		})
	}
}

func TestRelatedRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
		wantErr   error
	}{
		{"default", "", search.DefaultRelatedLimit, nil},
		{"explicit", "?limit=5", 5, nil},
		{"upper bound", "?limit=10", 10, nil},
		{"zero", "?limit=0", 0, ErrValidation},
		{"too large", "?limit=11", 0, ErrValidation},
		{"not a number", "?limit=three", 0, ErrBinding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext("/api/v1/tips/1/related" + tt.query)

			var req RelatedRequest
			err := BindQueryAndValidate(c, &req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, req.LimitOrDefault())
		})
	}
}

func TestValidationErrors_Messages(t *testing.T) {
	limit := 11
	err := Validate(&RelatedRequest{Limit: &limit})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	fields := ValidationErrors(err)
	assert.Equal(t, "must be at most 10", fields["limit"])

	err = Validate(&SearchRequest{Impact: strings.Repeat("x", MaxQueryLength+1)})
	require.Error(t, err)
	assert.Equal(t, "must be at most 200 characters", ValidationErrors(err)["impact"])

	assert.Empty(t, ValidationErrors(errors.New("plain")))
	assert.False(t, IsValidationError(errors.New("plain")))
}

func TestNewSummaryResponse(t *testing.T) {
	got := NewSummaryResponse(domain.ImpactSummary{TipCount: 7, CarbonReductionTons: 9.5, CostSavingsUSD: 2475})

	body, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tipCount":7,"carbonReductionTons":9.5,"costSavingsUsd":2475}`, string(body))
}
