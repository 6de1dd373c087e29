package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"reviewhub/internal/api/repository"
)

// RatingService derives a title's rating as the mean of its review scores.
// A nil rating means the title has no reviews; it is never reported as zero.
type RatingService interface {
	Rating(ctx context.Context, titleID int64) (*float64, error)
	// Invalidate drops the memoized rating after a review write.
	Invalidate(ctx context.Context, titleID int64)
}

// Sentinel cache value for "no reviews": a real average can never be "none".
const ratingNone = "none"

type ratingService struct {
	reviewRepo repository.ReviewRepository
	rdb        *redis.Client
	ttl        time.Duration
	logger     *slog.Logger
}

// NewRatingService builds the aggregator. rdb may be nil, in which case every
// read goes straight to the database. The cache is a memo only: any Redis
// failure degrades to the direct query.
func NewRatingService(reviewRepo repository.ReviewRepository, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) RatingService {
	return &ratingService{
		reviewRepo: reviewRepo,
		rdb:        rdb,
		ttl:        ttl,
		logger:     logger,
	}
}

func ratingKey(titleID int64) string {
	return fmt.Sprintf("rating:title:%d", titleID)
}

func (s *ratingService) Rating(ctx context.Context, titleID int64) (*float64, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, ratingKey(titleID)).Result()
		switch {
		case err == nil:
			if cached == ratingNone {
				return nil, nil
			}
			if value, perr := strconv.ParseFloat(cached, 64); perr == nil {
				return &value, nil
			}
			// Unparseable entry: fall through and recompute.
		case err != redis.Nil:
			s.logger.Warn("rating cache read failed", "title_id", titleID, "error", err)
		}
	}

	avg, err := s.reviewRepo.AverageScore(ctx, titleID)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		value := ratingNone
		if avg != nil {
			value = strconv.FormatFloat(*avg, 'f', -1, 64)
		}
		if err := s.rdb.Set(ctx, ratingKey(titleID), value, s.ttl).Err(); err != nil {
			s.logger.Warn("rating cache write failed", "title_id", titleID, "error", err)
		}
	}

	return avg, nil
}

func (s *ratingService) Invalidate(ctx context.Context, titleID int64) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, ratingKey(titleID)).Err(); err != nil {
		s.logger.Warn("rating cache invalidation failed", "title_id", titleID, "error", err)
	}
}
