package events

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/nats-io/nats.go"
	"github.com/valyala/bytebufferpool"

	"github.com/neuproject/sports-calendar/internal/platform/logging"
	"github.com/neuproject/sports-calendar/internal/usecase"
)

const subjectMatchesUpdated = "matches.updated"

type NATSPublisherConfig struct {
	URL           string
	Name          string
	MaxReconnects int
	ReconnectWait time.Duration
}

func DefaultNATSPublisherConfig() NATSPublisherConfig {
	return NATSPublisherConfig{
		URL:           nats.DefaultURL,
		Name:          "sports-calendar",
		MaxReconnects: -1,
		ReconnectWait: 2 * time.Second,
	}
}

// NATSPublisher broadcasts sync outcomes so downstream consumers can
// invalidate caches or push notifications without polling the API.
type NATSPublisher struct {
	nc     *nats.Conn
	logger *logging.Logger
}

func NewNATSPublisher(cfg NATSPublisherConfig, logger *logging.Logger) (*NATSPublisher, error) {
	if logger == nil {
		logger = logging.Default()
	}

	opts := []nats.Option{
		nats.Name(cfg.Name),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			logger.Error("nats async error", "error", err)
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	return &NATSPublisher{nc: nc, logger: logger}, nil
}

func (p *NATSPublisher) PublishMatchesUpdated(ctx context.Context, summary usecase.SyncSummary) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	enc := sonic.ConfigDefault.NewEncoder(buf)
	if err := enc.Encode(matchesUpdatedEnvelope{
		Subject:    subjectMatchesUpdated,
		OccurredAt: time.Now().UTC(),
		Changed:    summary.Changed(),
		Summary:    summary,
	}); err != nil {
		return fmt.Errorf("marshal matches updated event: %w", err)
	}

	if err := p.nc.Publish(subjectMatchesUpdated, buf.Bytes()); err != nil {
		return fmt.Errorf("publish matches updated event: %w", err)
	}

	p.logger.InfoContext(ctx, "matches updated event published",
		"subject", subjectMatchesUpdated,
		"changed", summary.Changed(),
	)
	return nil
}

func (p *NATSPublisher) Close() {
	if p.nc == nil {
		return
	}
	if err := p.nc.Drain(); err != nil {
		p.nc.Close()
	}
}

type matchesUpdatedEnvelope struct {
	Subject    string              `json:"subject"`
	OccurredAt time.Time           `json:"occurredAt"`
	Changed    int                 `json:"changed"`
	Summary    usecase.SyncSummary `json:"summary"`
}
