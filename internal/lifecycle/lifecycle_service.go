package lifecycle

import (
	"context"

	lifecycleerrors "github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/lifecycle/errors"
	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/shared/apperror"
	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/shared/contextutil"

	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"
)

const DefaultMaxBatchSize = 100

//go:generate mockgen -source=lifecycle_service.go -destination=mock/lifecycle_service_mock.go -package=mock
type Service interface {
	Onboard(ctx context.Context, req OnboardingRequest) (OnboardResponse, error)
	OnboardBatch(ctx context.Context, reqs []OnboardingRequest) ([]OnboardBatchItem, error)
	Offboard(ctx context.Context, req OffboardingRequest) (OffboardResponse, error)
}

type service struct {
	maxBatchSize int
	logger       *zap.Logger
}

func NewService(maxBatchSize int, logger ...*zap.Logger) Service {
	l := zap.L().Named("lifecycle.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lifecycle.service")
	}
	if maxBatchSize <= 0 {
		maxBatchSize = DefaultMaxBatchSize
	}
	return &service{
		maxBatchSize: maxBatchSize,
		logger:       l,
	}
}

func (s *service) Onboard(ctx context.Context, req OnboardingRequest) (OnboardResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)
	log.Debug("onboard employee requested", zap.String("request_id", rid))

	switch res := Onboard(req).(type) {
	case Success:
		log.Info("onboard employee accepted",
			zap.String("request_id", rid),
			zap.String("user", res.Value),
		)
		return OnboardResponse{User: res.Value}, nil
	case Failure:
		log.Warn("onboard employee rejected",
			zap.String("request_id", rid),
			zap.Strings("missing_fields", res.Fields),
		)
		return OnboardResponse{}, toAppError(res)
	default:
		return OnboardResponse{}, apperror.ErrInternal
	}
}

func (s *service) OnboardBatch(ctx context.Context, reqs []OnboardingRequest) ([]OnboardBatchItem, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)
	log.Debug("onboard batch requested",
		zap.String("request_id", rid),
		zap.Int("size", len(reqs)),
	)

	if len(reqs) > s.maxBatchSize {
		log.Warn("onboard batch too large",
			zap.String("request_id", rid),
			zap.Int("size", len(reqs)),
			zap.Int("max", s.maxBatchSize),
		)
		return nil, lifecycleerrors.ErrBatchTooLarge.WithDetails(map[string]int{
			"size": len(reqs),
			"max":  s.maxBatchSize,
		})
	}

	items := iter.Map(reqs, func(req *OnboardingRequest) OnboardBatchItem {
		return batchItem(Onboard(*req))
	})
	for i := range items {
		items[i].Index = i
	}

	log.Info("onboard batch validated",
		zap.String("request_id", rid),
		zap.Int("size", len(items)),
	)
	return items, nil
}

func (s *service) Offboard(ctx context.Context, req OffboardingRequest) (OffboardResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)
	log.Debug("offboard employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	switch res := Offboard(req.Email).(type) {
	case Success:
		log.Info("offboard employee accepted",
			zap.String("request_id", rid),
			zap.String("email", req.Email),
		)
		return OffboardResponse{Message: res.Value}, nil
	case Failure:
		log.Warn("offboard employee rejected",
			zap.String("request_id", rid),
			zap.String("email", req.Email),
		)
		return OffboardResponse{}, toAppError(res)
	default:
		return OffboardResponse{}, apperror.ErrInternal
	}
}

func toAppError(f Failure) *apperror.AppError {
	switch f.Kind {
	case KindMissingFields:
		return lifecycleerrors.MissingFields(f.Fields)
	case KindInvalidEmail:
		return lifecycleerrors.ErrInvalidEmail
	default:
		return apperror.ErrInternal
	}
}

func batchItem(res Result) OnboardBatchItem {
	switch r := res.(type) {
	case Success:
		return OnboardBatchItem{Ok: true, User: r.Value}
	case Failure:
		appErr := toAppError(r)
		return OnboardBatchItem{
			Ok: false,
			Error: &BatchItemError{
				Code:    appErr.Code,
				Message: appErr.Message,
				Details: r.Fields,
			},
		}
	default:
		return OnboardBatchItem{
			Ok:    false,
			Error: &BatchItemError{Code: apperror.ErrInternal.Code, Message: apperror.ErrInternal.Message},
		}
	}
}
