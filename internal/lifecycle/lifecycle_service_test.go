package lifecycle_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/lifecycle"
	lifecycleerrors "github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/lifecycle/errors"
	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/shared/apperror"
	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func setupServiceTest(t *testing.T, maxBatchSize int) (lifecycle.Service, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	return lifecycle.NewService(maxBatchSize, zap.New(core)), logs
}

func TestLifecycleService_Onboard(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "REQ-123")

	t.Run("success", func(t *testing.T) {
		svc, logs := setupServiceTest(t, 0)

		resp, err := svc.Onboard(ctx, lifecycle.OnboardingRequestFromMap(completeRequest()))

		require.NoError(t, err)
		assert.Equal(t, "John Doe", resp.User)

		accepted := logs.FilterMessage("onboard employee accepted").All()
		require.Len(t, accepted, 1)
		assert.Equal(t, "REQ-123", accepted[0].ContextMap()["request_id"])
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := setupServiceTest(t, 0)

		_, err := svc.Onboard(ctx, lifecycle.OnboardingRequestFromMap(map[string]string{"first_name": "Jane"}))

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeMissingFields, appErr.Code)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		assert.Equal(t, "missing fields: department, email, last_name, start_date", appErr.Message)
		assert.Equal(t, []string{"department", "email", "last_name", "start_date"}, appErr.Details)
	})

	t.Run("uses logger from context", func(t *testing.T) {
		svc, serviceLogs := setupServiceTest(t, 0)
		core, ctxLogs := observer.New(zap.DebugLevel)
		scoped := contextutil.WithLogger(ctx, zap.New(core))

		_, err := svc.Onboard(scoped, lifecycle.OnboardingRequest{})

		require.Error(t, err)
		assert.Equal(t, 1, ctxLogs.FilterMessage("onboard employee rejected").Len())
		assert.Equal(t, 0, serviceLogs.Len())
	})
}

func TestLifecycleService_Offboard(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, _ := setupServiceTest(t, 0)

		resp, err := svc.Offboard(ctx, lifecycle.OffboardingRequest{Email: "jane@company.com"})

		require.NoError(t, err)
		assert.Equal(t, "User jane@company.com successfully offboarded", resp.Message)
	})

	t.Run("invalid email", func(t *testing.T) {
		svc, _ := setupServiceTest(t, 0)

		for _, email := range []string{"", "not-an-email"} {
			_, err := svc.Offboard(ctx, lifecycle.OffboardingRequest{Email: email})

			assert.ErrorIs(t, err, lifecycleerrors.ErrInvalidEmail)
			assert.EqualError(t, err, "invalid email")
		}
	})
}

func TestLifecycleService_OnboardBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps input order and per item outcome", func(t *testing.T) {
		svc, _ := setupServiceTest(t, 0)
		reqs := []lifecycle.OnboardingRequest{
			lifecycle.OnboardingRequestFromMap(completeRequest()),
			lifecycle.OnboardingRequestFromMap(map[string]string{"first_name": "Jane"}),
			lifecycle.OnboardingRequestFromMap(map[string]string{
				"first_name": "Ana",
				"last_name":  "Lee",
				"email":      "ana@company.com",
				"department": "Finance",
				"start_date": "2024-02-01",
			}),
		}

		items, err := svc.OnboardBatch(ctx, reqs)

		require.NoError(t, err)
		require.Len(t, items, 3)

		assert.Equal(t, lifecycle.OnboardBatchItem{Index: 0, Ok: true, User: "John Doe"}, items[0])

		assert.Equal(t, 1, items[1].Index)
		assert.False(t, items[1].Ok)
		require.NotNil(t, items[1].Error)
		assert.Equal(t, apperror.CodeMissingFields, items[1].Error.Code)
		assert.Equal(t, "missing fields: department, email, last_name, start_date", items[1].Error.Message)
		assert.Equal(t, []string{"department", "email", "last_name", "start_date"}, items[1].Error.Details)

		assert.Equal(t, lifecycle.OnboardBatchItem{Index: 2, Ok: true, User: "Ana Lee"}, items[2])
	})

	t.Run("item outcome matches single call", func(t *testing.T) {
		svc, _ := setupServiceTest(t, 0)
		req := lifecycle.OnboardingRequestFromMap(map[string]string{"email": "x@y"})

		items, err := svc.OnboardBatch(ctx, []lifecycle.OnboardingRequest{req})
		require.NoError(t, err)

		_, singleErr := svc.Onboard(ctx, req)
		assert.Equal(t, singleErr.Error(), items[0].Error.Message)
	})

	t.Run("rejects batch over limit", func(t *testing.T) {
		svc, _ := setupServiceTest(t, 2)
		reqs := make([]lifecycle.OnboardingRequest, 3)

		items, err := svc.OnboardBatch(ctx, reqs)

		assert.Nil(t, items)
		assert.ErrorIs(t, err, lifecycleerrors.ErrBatchTooLarge)

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, map[string]int{"size": 3, "max": 2}, appErr.Details)
	})
}
