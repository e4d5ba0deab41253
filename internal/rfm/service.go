package rfm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/davemendes/salespipe/internal/retail"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=rfm
type Repository interface {
	ListCustomers(ctx context.Context) ([]retail.Customer, error)
	ReplaceSegments(ctx context.Context, segments []Segment) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Analyze scores every stored customer as of the given date and replaces
// the stored segments with the result.
func (s *Service) Analyze(ctx context.Context, asOf time.Time) ([]Segment, error) {
	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	if len(customers) == 0 {
		s.log.Info("no customers to score")
		return nil, nil
	}

	segments := Score(customers, asOf)

	if err := s.repo.ReplaceSegments(ctx, segments); err != nil {
		return nil, fmt.Errorf("storing segments: %w", err)
	}

	counts := make(map[string]int)
	for _, seg := range segments {
		counts[seg.Segment]++
	}

	s.log.Info("rfm analysis finished", "customers", len(segments), "segments", counts)

	return segments, nil
}
