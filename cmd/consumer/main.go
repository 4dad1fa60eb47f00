package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/shared/constant"
	"hotelier/shared/logger"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Audit-log consumer for booking lifecycle events. Runs alongside the API
// and logs every published transition until interrupted.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	client := kafka.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	topics := []string{
		constant.KafkaTopicBookingCreated,
		constant.KafkaTopicBookingCheckedOut,
		constant.KafkaTopicBookingCancelled,
	}

	for _, topic := range topics {
		go client.Consume(ctx, cfg.Kafka.ConsumerGroup, topic, logBookingEvent(topic))
	}

	log.Info().Strs("topics", topics).Msg("booking event consumer started")

	<-ctx.Done()

	log.Info().Msg("booking event consumer stopped")
}

func logBookingEvent(topic string) func(message kafkaGo.Message) {
	return func(message kafkaGo.Message) {
		decoded, err := kafka.DecodeKafkaMessage[dto.BookingEvent](message)
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to decode booking event")

			return
		}

		event, ok := decoded.Value.(dto.BookingEvent)
		if !ok {
			log.Error().Str("topic", topic).Msg("unexpected booking event payload")

			return
		}

		log.Info().
			Str("topic", topic).
			Int64("bookingId", event.BookingID).
			Int64("roomId", event.RoomID).
			Str("status", event.BookingStatus).
			Float64("totalAmount", event.TotalAmount).
			Msg("booking event received")
	}
}
