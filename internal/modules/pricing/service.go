// README: Pricing service computes fare estimates with the configured strategy.
package pricing

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Service struct {
	strategy Strategy
	logger   *zap.Logger
}

func NewService(strategy Strategy, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{strategy: strategy, logger: logger.Named("pricing")}
}

func (s *Service) Strategy() Strategy {
	return s.strategy
}

// Estimate prices one trip. Calculation errors carry one of the package
// sentinels; use Message for the customer-facing text.
func (s *Service) Estimate(ctx context.Context, trip TripDetails) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	res, err := s.strategy.Calculate(trip)
	if err != nil {
		s.logger.Debug("quote rejected",
			zap.String("strategy", s.strategy.Name()),
			zap.String("from", trip.From),
			zap.String("to", trip.To),
			zap.String("vehicle", string(trip.VehicleCategory)),
			zap.Error(err),
		)
		return nil, err
	}
	s.logger.Debug("quote computed",
		zap.String("strategy", res.Strategy),
		zap.String("route", res.Details.RouteID),
		zap.String("vehicle", string(res.Details.VehicleCategory)),
		zap.Int("passengers", trip.PassengerCount),
		zap.Float64("total", res.Breakdown.Total),
		zap.Int("warnings", len(res.Warnings)),
		zap.Duration("took", time.Since(start)),
	)
	return res, nil
}
