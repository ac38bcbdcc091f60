package company

import (
	"context"
	"time"

	"go-leaveai/internal/calendar"
	companyerrors "go-leaveai/internal/company/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	WeeklyOffKeyPrefix = "company:weekly_off:"
	weeklyOffTTL       = time.Hour
)

func WeeklyOffKey(companyID string) string {
	return WeeklyOffKeyPrefix + companyID
}

//go:generate mockgen -destination=mock/company_service_mock.go -package=mock . Service
type Service interface {
	WeeklyOff(ctx context.Context, companyID string) (calendar.WeeklyOff, error)
	GetPolicy(ctx context.Context, companyID string) (PolicyResponse, error)
	UpdatePolicy(ctx context.Context, companyID string, req UpdatePolicyRequest) (PolicyResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l, now: time.Now}
}

// WeeklyOff resolves the company's weekend rule, defaulting to SAT_SUN when
// no policy is configured. Lookups are cached in redis and concurrent misses
// for the same company share one database read.
func (s *service) WeeklyOff(ctx context.Context, companyID string) (calendar.WeeklyOff, error) {
	cacheKey := WeeklyOffKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			if w := calendar.WeeklyOff(cached); w.Valid() {
				return w, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		p, err := s.repo.FindLatestPolicy(ctx, companyID)
		if err != nil {
			return nil, err
		}

		weeklyOff := calendar.WeeklyOffSatSun
		if p != nil {
			weeklyOff = calendar.ParseWeeklyOff(p.WeeklyOffType)
		}

		if s.rdb != nil {
			if err := s.rdb.Set(ctx, cacheKey, string(weeklyOff), weeklyOffTTL).Err(); err != nil {
				s.logger.Warn("cache weekly off failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
		return weeklyOff, nil
	})
	if err != nil {
		s.logger.Error("resolve weekly off failed", zap.String("company_id", companyID), zap.Error(err))
		return "", err
	}

	return v.(calendar.WeeklyOff), nil
}

func (s *service) GetPolicy(ctx context.Context, companyID string) (PolicyResponse, error) {
	p, err := s.repo.FindLatestPolicy(ctx, companyID)
	if err != nil {
		return PolicyResponse{}, err
	}
	if p == nil {
		return PolicyResponse{
			CompanyID:     companyID,
			WeeklyOffType: string(calendar.WeeklyOffSatSun),
			IsDefault:     true,
		}, nil
	}
	return mapToResponse(p), nil
}

// UpdatePolicy appends a new effective policy row; history is kept.
func (s *service) UpdatePolicy(ctx context.Context, companyID string, req UpdatePolicyRequest) (PolicyResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PolicyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	weeklyOff := calendar.WeeklyOff(req.WeeklyOffType)
	if !weeklyOff.Valid() {
		return PolicyResponse{}, companyerrors.ErrInvalidWeeklyOff
	}

	effectiveFrom := calendar.DateOf(s.now())
	if req.EffectiveFrom != "" {
		effectiveFrom, err = time.Parse(calendar.DateLayout, req.EffectiveFrom)
		if err != nil {
			return PolicyResponse{}, companyerrors.ErrInvalidEffectiveFrom
		}
	}

	p := &Policy{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		WeeklyOffType: string(weeklyOff),
		Description:   req.Description,
		EffectiveFrom: effectiveFrom,
	}
	if err := s.repo.CreatePolicy(ctx, p); err != nil {
		s.logger.Error("create company policy failed", zap.String("company_id", companyID), zap.Error(err))
		return PolicyResponse{}, err
	}

	if s.rdb != nil {
		cacheKey := WeeklyOffKey(companyID)
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			s.logger.Error("failed to invalidate weekly off cache",
				zap.Error(err),
				zap.String("key", cacheKey),
			)
		}
	}

	s.logger.Info("company policy updated",
		zap.String("company_id", companyID),
		zap.String("weekly_off_type", p.WeeklyOffType),
	)
	return mapToResponse(p), nil
}

func mapToResponse(p *Policy) PolicyResponse {
	return PolicyResponse{
		CompanyID:     p.CompanyID.String(),
		WeeklyOffType: p.WeeklyOffType,
		Description:   p.Description,
		EffectiveFrom: p.EffectiveFrom.Format(calendar.DateLayout),
	}
}
