package printer

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"pdv_backend/internal/models"
)

const dispatchTimeout = 10 * time.Second

// Dispatcher sends kitchen tickets after an order is committed. It never
// reports failure to the caller: the order is already durable and a dead
// printer must not affect it. Failures are only visible in the logs.
type Dispatcher struct {
	sink Sink
	log  *logrus.Logger
}

func NewDispatcher(sink Sink, log *logrus.Logger) *Dispatcher {
	return &Dispatcher{sink: sink, log: log}
}

// Dispatch formats and sends the ticket for an order. It runs on its own
// context, detached from the request, so a client disconnect cannot cancel a
// print for an order that already committed.
func (d *Dispatcher) Dispatch(order *models.Order) {
	doc := Format(order, time.Now())

	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	if err := d.sink.Send(ctx, doc); err != nil {
		d.log.WithFields(logrus.Fields{
			"order_id":       order.ID,
			"control_number": order.ControlNumber,
		}).WithError(err).Error("failed to print ticket")
		return
	}

	d.log.WithFields(logrus.Fields{
		"order_id":       order.ID,
		"control_number": order.ControlNumber,
	}).Info("ticket dispatched")
}
