package printer

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"pdv_backend/internal/redis"
)

// Sink delivers a formatted ticket to wherever it gets printed. Send may
// fail; the dispatcher decides what to do about it.
type Sink interface {
	Send(ctx context.Context, doc Document) error
}

// QueueSink hands tickets to the Redis queue the print station consumes.
type QueueSink struct {
	client *redis.Client
	queue  string
}

func NewQueueSink(client *redis.Client, queue string) *QueueSink {
	return &QueueSink{client: client, queue: queue}
}

func (s *QueueSink) Send(ctx context.Context, doc Document) error {
	return s.client.PushTicket(ctx, s.queue, []byte(doc.Body))
}

// TCPSink writes raw ticket bytes straight to a network thermal printer
// (port 9100 convention).
type TCPSink struct {
	addr    string
	timeout time.Duration
}

func NewTCPSink(addr string) *TCPSink {
	return &TCPSink{addr: addr, timeout: 5 * time.Second}
}

func (s *TCPSink) Send(ctx context.Context, doc Document) error {
	dialer := net.Dialer{Timeout: s.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetWriteDeadline(deadline)
	} else {
		conn.SetWriteDeadline(time.Now().Add(s.timeout))
	}
	_, err = conn.Write([]byte(doc.Body))
	return err
}

// LogSink only records print intent. Used outside production and in tests,
// where no printer hardware exists.
type LogSink struct {
	log *logrus.Logger

	mu   sync.Mutex
	sent []Document
}

func NewLogSink(log *logrus.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Send(_ context.Context, doc Document) error {
	s.mu.Lock()
	s.sent = append(s.sent, doc)
	s.mu.Unlock()

	if s.log != nil {
		s.log.WithFields(logrus.Fields{
			"order_id":       doc.OrderID,
			"control_number": doc.ControlNumber,
		}).Info("printing ticket (simulated)")
	}
	return nil
}

// Sent returns the documents recorded so far.
func (s *LogSink) Sent() []Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Document, len(s.sent))
	copy(out, s.sent)
	return out
}
