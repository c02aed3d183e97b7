// Package mailer hands outbound mail to the delivery service.
package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/dtroode/garden-server/internal/logger"
	"github.com/dtroode/garden-server/internal/model"
)

// publisher is the subset of a NATS connection used for mail.
type publisher interface {
	Publish(subject string, data []byte) error
}

// Config contains NATS connection parameters.
type Config struct {
	URL           string
	Subject       string
	MaxReconnects int
	ReconnectWait time.Duration
}

var _ model.Mailer = (*NATS)(nil)

// NATS publishes mail as JSON on a subject consumed by the mail sender.
type NATS struct {
	conn    *nats.Conn
	pub     publisher
	subject string
	logger  *logger.Logger
}

// NewNATS connects to NATS.
func NewNATS(cfg Config, logger *logger.Logger) (*NATS, error) {
	opts := []nats.Option{
		nats.Name("garden-server"),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	m := NewNATSWithPublisher(conn, cfg.Subject, logger)
	m.conn = conn
	return m, nil
}

// NewNATSWithPublisher allows injecting a publisher (used in tests).
func NewNATSWithPublisher(pub publisher, subject string, logger *logger.Logger) *NATS {
	return &NATS{pub: pub, subject: subject, logger: logger}
}

// Send publishes mail.
func (m *NATS) Send(_ context.Context, mail model.Mail) error {
	data, err := json.Marshal(mail)
	if err != nil {
		return fmt.Errorf("failed to marshal mail: %w", err)
	}

	if err := m.pub.Publish(m.subject, data); err != nil {
		return fmt.Errorf("failed to publish mail: %w", err)
	}

	m.logger.Debug("Mailer: mail published", "subject", m.subject, "to", mail.To)
	return nil
}

// Close drains the connection.
func (m *NATS) Close() {
	if m.conn != nil {
		_ = m.conn.Drain()
	}
}

var _ model.Mailer = (*Log)(nil)

// Log writes mail to the logger instead of delivering it.
type Log struct {
	logger *logger.Logger
}

// NewLog creates a Log mailer.
func NewLog(logger *logger.Logger) *Log {
	return &Log{logger: logger}
}

// Send logs mail.
func (m *Log) Send(_ context.Context, mail model.Mail) error {
	m.logger.Info("Mailer: delivery disabled, mail dropped",
		"to", mail.To,
		"subject", mail.Subject)
	return nil
}
