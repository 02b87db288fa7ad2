// Package sensor reads the insole sensor data of the signed-in user.
package sensor

import (
	"context"
	"errors"
	"log/slog"
	"time"

	clientapi "github.com/iudanet/khutwa/internal/client/api"
	"github.com/iudanet/khutwa/internal/models"
)

// DefaultInterval интервал опроса на главном экране
const DefaultInterval = 5 * time.Second

// ErrInvalidInterval is returned for a non-positive poll interval
var ErrInvalidInterval = errors.New("poll interval must be positive")

//go:generate moq -out gateway_mock.go . Gateway

// Gateway is the part of the backend API the dashboard needs.
// *clientapi.Client implements it.
type Gateway interface {
	LatestSensorData(ctx context.Context) (*models.SensorReading, error)
}

var _ Gateway = (*clientapi.Client)(nil)

// Service читает показания датчиков
type Service struct {
	gateway Gateway
	logger  *slog.Logger
}

// NewService создает Service
func NewService(gateway Gateway, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{gateway: gateway, logger: logger}
}

// Latest returns the most recent reading, or nil without error when the
// backend has none yet
func (s *Service) Latest(ctx context.Context) (*models.SensorReading, error) {
	reading, err := s.gateway.LatestSensorData(ctx)
	if err != nil {
		if !clientapi.IsKind(err, clientapi.KindCanceled) {
			s.logger.WarnContext(ctx, "failed to fetch sensor data", "error", err)
		}
		return nil, err
	}
	return reading, nil
}

// Update is one poll result. Exactly one of Reading and Err is meaningful;
// both nil means no reading exists yet.
type Update struct {
	At      time.Time
	Reading *models.SensorReading
	Err     error
}

// Poller fetches the latest reading immediately and then every interval
type Poller struct {
	service  *Service
	interval time.Duration
}

// NewPoller создает Poller
func NewPoller(service *Service, interval time.Duration) (*Poller, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	return &Poller{service: service, interval: interval}, nil
}

// Run polls until ctx is cancelled and returns ctx.Err(). fn is called from
// the Run goroutine; results that complete after cancellation are dropped.
func (p *Poller) Run(ctx context.Context, fn func(Update)) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx, fn)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.poll(ctx, fn)
		}
	}
}

func (p *Poller) poll(ctx context.Context, fn func(Update)) {
	reading, err := p.service.Latest(ctx)
	// Ответ пришел после отмены: экран уже ушел, результат не доставляем
	if ctx.Err() != nil {
		return
	}
	fn(Update{At: time.Now(), Reading: reading, Err: err})
}
