package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockChecker implements HealthChecker for testing.
type mockChecker struct {
	name string
	err  error
}

func (m *mockChecker) Name() string {
	return m.name
}

func (m *mockChecker) Check(ctx context.Context) error {
	return m.err
}

func TestNewHealthRegistry(t *testing.T) {
	registry := NewHealthRegistry()

	require.NotNil(t, registry)
	assert.NotNil(t, registry.checkers)
	assert.Empty(t, registry.checkers)
}

func TestRegister_DuplicateName(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&mockChecker{name: "catalog"}))

	err := registry.Register(&mockChecker{name: "catalog"})

	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "catalog")
	assert.Len(t, registry.checkers, 1)
}

func TestCheckAll_NoCheckers(t *testing.T) {
	result := NewHealthRegistry().CheckAll(context.Background())

	require.NotNil(t, result)
	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Empty(t, result.Checks)
	assert.False(t, result.Timestamp.IsZero())
}

func TestCheckAll(t *testing.T) {
	tests := []struct {
		name       string
		checkers   []HealthChecker
		wantStatus HealthStatus
		wantFailed map[string]string
	}{
		{
			name: "all healthy",
			checkers: []HealthChecker{
				&mockChecker{name: "catalog"},
				&mockChecker{name: "tips-api"},
			},
			wantStatus: HealthStatusHealthy,
		},
		{
			name: "one unhealthy",
			checkers: []HealthChecker{
				&mockChecker{name: "catalog"},
				&mockChecker{name: "tips-api", err: errors.New("connection refused")},
			},
			wantStatus: HealthStatusUnhealthy,
			wantFailed: map[string]string{"tips-api": "connection refused"},
		},
		{
			name: "func checker",
			checkers: []HealthChecker{
				HealthCheckFunc{CheckName: "preferences", Fn: func(context.Context) error {
					return errors.New("file unreadable")
				}},
			},
			wantStatus: HealthStatusUnhealthy,
			wantFailed: map[string]string{"preferences": "file unreadable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, registry.Register(c))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Len(t, result.Checks, len(tt.checkers))

			for name, check := range result.Checks {
				if msg, failed := tt.wantFailed[name]; failed {
					assert.Equal(t, HealthStatusUnhealthy, check.Status)
					assert.Equal(t, msg, check.Message)
				} else {
					assert.Equal(t, HealthStatusHealthy, check.Status)
					assert.Empty(t, check.Message)
				}
			}
		})
	}
}

// contextAwareChecker implements HealthChecker that respects context cancellation.
type contextAwareChecker struct {
	name string
}

func (c *contextAwareChecker) Name() string {
	return c.name
}

func (c *contextAwareChecker) Check(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func TestCheckAll_ContextCancelled(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&contextAwareChecker{name: "tips-api"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Equal(t, HealthStatusUnhealthy, result.Checks["tips-api"].Status)
	assert.Contains(t, result.Checks["tips-api"].Message, "context canceled")
}
