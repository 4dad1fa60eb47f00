package kafka_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelier/infras/kafka"
	"hotelier/internal/domains/booking/model/dto"
)

func TestDecodeKafkaMessage_BookingEvent(t *testing.T) {
	event := dto.BookingEvent{
		BookingID:     7,
		GuestID:       1,
		RoomID:        2,
		CheckIn:       "2025-01-10",
		CheckOut:      "2025-01-12",
		TotalAmount:   200,
		BookingStatus: "Confirmed",
	}

	message := kafka.Message{
		Key:   "7",
		Value: event,
	}

	kafkaMessage, err := message.ToKafkaMessage()
	assert.NoError(t, err)

	decoded, err := kafka.DecodeKafkaMessage[dto.BookingEvent](kafkaMessage)
	assert.NoError(t, err)
	assert.Equal(t, "7", decoded.Key)
	assert.Equal(t, event, decoded.Value)
}
