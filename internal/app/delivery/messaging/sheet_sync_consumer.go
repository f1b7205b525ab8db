package messaging

import (
	"agenda-sync-service/internal/app/config"
	"agenda-sync-service/internal/app/contracts"
	"agenda-sync-service/internal/pkg/constvars"
	"agenda-sync-service/internal/pkg/dto/requests"
	"agenda-sync-service/internal/pkg/exceptions"
	"agenda-sync-service/internal/pkg/utils"
	"context"
	"errors"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Channel is the subset of *amqp.Channel the consumer needs.
type Channel interface {
	Qos(prefetchCount, prefetchSize int, global bool) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Confirm(noWait bool) error
	NotifyPublish(confirm chan amqp.Confirmation) chan amqp.Confirmation
}

// SheetSyncConsumer takes appointment payloads off the sync queue one at a
// time and pushes them through the sheet sync usecase. Failed messages are
// moved to the dead-letter queue with the error in their headers.
type SheetSyncConsumer struct {
	ch             Channel
	usecase        contracts.SheetSyncUsecase
	queueName      string
	deadLetterName string
	log            *zap.Logger
	confirms       chan amqp.Confirmation
	mu             sync.Mutex
}

// NewSheetSyncConsumer declares durable queues, enables confirms and sets QoS to 1.
func NewSheetSyncConsumer(ch Channel, usecase contracts.SheetSyncUsecase, internalConfig *config.InternalConfig, logger *zap.Logger) (*SheetSyncConsumer, error) {
	queueName := internalConfig.RabbitMQ.SheetSyncQueue
	if queueName == "" {
		queueName = constvars.DefaultSheetSyncQueueName
	}
	deadLetterName := internalConfig.RabbitMQ.SheetSyncDeadLetter
	if deadLetterName == "" {
		deadLetterName = constvars.DefaultSheetSyncDeadLetterName
	}

	for _, name := range []string{queueName, deadLetterName} {
		if _, err := ch.QueueDeclare(
			name,  // name
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,   // args
		); err != nil {
			return nil, err
		}
	}

	// One appointment in flight keeps writes to the sheet sequential.
	if err := ch.Qos(1, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &SheetSyncConsumer{
		ch:             ch,
		usecase:        usecase,
		queueName:      queueName,
		deadLetterName: deadLetterName,
		log:            logger,
		confirms:       ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

// Run consumes until ctx is cancelled or the delivery channel closes.
func (c *SheetSyncConsumer) Run(ctx context.Context) error {
	deliveries, err := c.ch.Consume(c.queueName, "", false, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQConsumeMessage(err, c.queueName)
	}

	c.log.Info("SheetSyncConsumer.Run started",
		zap.String(constvars.LoggingQueueNameKey, c.queueName))

	for {
		select {
		case <-ctx.Done():
			c.log.Info("SheetSyncConsumer.Run stopped",
				zap.String(constvars.LoggingQueueNameKey, c.queueName))
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return exceptions.ErrRabbitMQConsumeMessage(errors.New("delivery channel closed"), c.queueName)
			}
			c.Handle(ctx, delivery)
		}
	}
}

// Handle processes a single delivery and always settles it.
func (c *SheetSyncConsumer) Handle(ctx context.Context, delivery amqp.Delivery) {
	requestID := delivery.MessageId
	if requestID == "" {
		requestID = utils.GenerateRequestID()
	}
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)

	c.log.Info("SheetSyncConsumer.Handle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64(constvars.LoggingDeliveryTagKey, delivery.DeliveryTag))

	if err := c.process(ctx, delivery.Body); err != nil {
		c.log.Error("SheetSyncConsumer.Handle sync failed, moving to dead-letter queue",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, c.deadLetterName),
			zap.Error(err))

		if publishErr := c.deadLetter(ctx, delivery, err); publishErr != nil {
			c.log.Error("SheetSyncConsumer.Handle dead-letter publish failed, requeueing",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(publishErr))
			_ = delivery.Nack(false, true)
			return
		}
	}

	if err := delivery.Ack(false); err != nil {
		c.log.Error("SheetSyncConsumer.Handle ack failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		return
	}

	c.log.Info("SheetSyncConsumer.Handle acknowledged",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64(constvars.LoggingDeliveryTagKey, delivery.DeliveryTag))
}

func (c *SheetSyncConsumer) process(ctx context.Context, body []byte) error {
	request := new(requests.SyncAppointment)
	if err := json.Unmarshal(body, request); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	utils.SanitizeSyncAppointmentRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	record, err := request.ToRecord()
	if err != nil {
		return err
	}
	_, err = c.usecase.SyncAppointment(ctx, record)
	return err
}

func (c *SheetSyncConsumer) deadLetter(ctx context.Context, delivery amqp.Delivery, cause error) error {
	headers := amqp.Table{}
	for key, value := range delivery.Headers {
		headers[key] = value
	}
	headers[constvars.MessageHeaderError] = cause.Error()
	headers[constvars.MessageHeaderErrorKind] = exceptions.KindOf(cause)

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         delivery.Body,
		Headers:      headers,
		MessageId:    delivery.MessageId,
		DeliveryMode: amqp.Persistent,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ch.PublishWithContext(ctx, "", c.deadLetterName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, c.deadLetterName)
	}

	select {
	case confirmed := <-c.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(errors.New(constvars.ErrDevRabbitMQMessageUnconfirm), c.deadLetterName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), c.deadLetterName)
	}
	return nil
}
