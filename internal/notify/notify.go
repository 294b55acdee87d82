// Package notify announces finished documentation runs on a NATS subject so
// that servers and caches in front of the output can reload.
package notify

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"

	"git.home.luguber.info/inful/classydoc/internal/publish"
)

// DefaultSubject is used when no subject is configured.
const DefaultSubject = "classydoc.runs"

// Event is the JSON payload published after every run.
type Event struct {
	RunID       string    `json:"run_id"`
	Outcome     string    `json:"outcome"`
	Pages       int       `json:"pages"`
	Warnings    int       `json:"warnings"`
	DurationMS  int64     `json:"duration_ms"`
	Destination string    `json:"destination"`
	Error       string    `json:"error,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// EventFromReport summarizes a run. report may be nil when the run failed
// before it started.
func EventFromReport(report *publish.Report, destination string, runErr error) Event {
	ev := Event{Destination: destination, Outcome: "failed", Timestamp: time.Now().UTC()}
	if report != nil {
		ev.RunID = report.RunID
		ev.Outcome = report.Outcome
		ev.Pages = len(report.Written)
		ev.Warnings = len(report.Warnings)
		ev.DurationMS = report.Duration().Milliseconds()
	}
	if runErr != nil {
		ev.Outcome = "failed"
		ev.Error = runErr.Error()
	}
	return ev
}

// Publisher sends run events over a NATS connection.
type Publisher struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

// Connect dials the NATS server at url.
func Connect(url, subject string, logger *slog.Logger) (*Publisher, error) {
	if subject == "" {
		subject = DefaultSubject
	}
	conn, err := nats.Connect(url, nats.Name("classydoc"), nats.Timeout(5*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &Publisher{conn: conn, subject: subject, logger: logger}, nil
}

// Publish sends ev and waits until the server has received it.
func (p *Publisher) Publish(ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	if err := p.conn.FlushTimeout(5 * time.Second); err != nil {
		return fmt.Errorf("failed to flush event: %w", err)
	}
	p.logger.Debug("Published run event", slog.String("subject", p.subject), slog.String("run_id", ev.RunID))
	return nil
}

// Close drains and closes the connection.
func (p *Publisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}
}
