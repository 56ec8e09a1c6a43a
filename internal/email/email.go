package email

import (
	"context"
	"fmt"

	"github.com/mkravets/airport-service/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.OrderEvent) error {
	fmt.Printf("send email to user %s: %s, order %s, flight %s, %d seat(s)\n",
		event.UserID, event.Type, event.OrderID, event.FlightID, len(event.SeatIDs))
	return nil
}
