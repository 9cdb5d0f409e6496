package workflow

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/eventhotel/booking-api/internal/model"
	"github.com/eventhotel/booking-api/internal/mq"
	"github.com/eventhotel/booking-api/internal/service/domain"
)

// BookingWorkflow wraps the booking service and publishes lifecycle
// events after successful writes. The booking row is already committed
// when publishing runs, so a publish failure is logged, not returned.
type BookingWorkflow struct {
	BookingService domain.BookingService
	MQConn         *amqp.Connection
	Logger         *zap.Logger
}

func NewBookingWorkflow(bookingService domain.BookingService, mqConn *amqp.Connection, logger *zap.Logger) *BookingWorkflow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingWorkflow{
		BookingService: bookingService,
		MQConn:         mqConn,
		Logger:         logger,
	}
}

func (w *BookingWorkflow) Get(ctx context.Context, userID uint) (*model.Booking, error) {
	return w.BookingService.Get(ctx, userID)
}

func (w *BookingWorkflow) Create(ctx context.Context, userID, roomID uint) (uint, error) {
	bookingID, err := w.BookingService.Create(ctx, userID, roomID)
	if err != nil {
		return 0, err
	}

	w.publish(mq.EventBookingCreated, bookingID, userID, roomID)
	return bookingID, nil
}

func (w *BookingWorkflow) Update(ctx context.Context, userID, roomID, bookingID uint) (uint, error) {
	updatedID, err := w.BookingService.Update(ctx, userID, roomID, bookingID)
	if err != nil {
		return 0, err
	}

	w.publish(mq.EventBookingUpdated, updatedID, userID, roomID)
	return updatedID, nil
}

func (w *BookingWorkflow) publish(event string, bookingID, userID, roomID uint) {
	if w.MQConn == nil {
		return
	}

	ch, err := mq.NewChannel(w.MQConn)
	if err != nil {
		w.Logger.Warn("failed to open mq channel", zap.String("event", event), zap.Error(err))
		return
	}
	defer ch.Close()

	if err := mq.SendImmediateMessage(ch, mq.BookingEventsQueue,
		mq.BookingEventMessage{
			Event:     event,
			BookingID: bookingID,
			UserID:    userID,
			RoomID:    roomID,
		}); err != nil {
		w.Logger.Warn("failed to publish booking event", zap.String("event", event), zap.Error(err))
	}
}
