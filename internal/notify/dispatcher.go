package notify

import (
	"context"
	"time"

	"github.com/mcsclean/bookingd/internal/domain"
	"github.com/mcsclean/bookingd/internal/logger"
)

const (
	// DefaultQueueSize bounds the pending-confirmation backlog. When the
	// queue is full new confirmations are dropped, never the bookings.
	DefaultQueueSize = 64
	// sendTimeout caps one delivery attempt.
	sendTimeout = 10 * time.Second
)

// Dispatcher delivers booking confirmations out of band. Enqueue never
// blocks and delivery outcomes are only logged: the booking response has
// already been returned to the caller by the time a message goes out.
type Dispatcher struct {
	sender Sender
	logger logger.Logger
	loc    *time.Location
	queue  chan domain.Booking
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewDispatcher creates a dispatcher delivering through sender. Message
// times are rendered in loc.
func NewDispatcher(sender Sender, log logger.Logger, loc *time.Location, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Dispatcher{
		sender: sender,
		logger: log,
		loc:    loc,
		queue:  make(chan domain.Booking, queueSize),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Start launches the delivery worker.
func (d *Dispatcher) Start(ctx context.Context) error {
	go func() {
		defer close(d.doneCh)
		for {
			select {
			case b := <-d.queue:
				d.deliver(b)
			case <-d.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

// Stop stops the worker. Queued messages not yet delivered are dropped.
func (d *Dispatcher) Stop() {
	close(d.stopCh)
	<-d.doneCh
}

// Enqueue schedules a confirmation for an admitted booking. Bookings
// without a deliverable phone number are skipped silently; a full queue
// drops the message with a warning.
func (d *Dispatcher) Enqueue(b domain.Booking) {
	if b.Phone == "" || !ValidPhone(b.Phone) {
		d.logger.Debug("skipping sms confirmation, no deliverable phone",
			logger.String("booking_id", b.ID))
		return
	}

	select {
	case d.queue <- b:
	default:
		d.logger.Warn("sms queue full, dropping confirmation",
			logger.String("booking_id", b.ID))
	}
}

func (d *Dispatcher) deliver(b domain.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	body := ConfirmationText(b, d.loc)
	if err := d.sender.Send(ctx, b.Phone, body); err != nil {
		d.logger.Warn("sms confirmation failed",
			logger.String("booking_id", b.ID),
			logger.String("provider", d.sender.ProviderID()),
			logger.Error(err))
		return
	}

	d.logger.Info("sms confirmation sent",
		logger.String("booking_id", b.ID),
		logger.String("provider", d.sender.ProviderID()))
}
