package payments

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	pkgerrors "github.com/vedicwisdom/funnel-backend/pkg/errors"
	"github.com/vedicwisdom/funnel-backend/pkg/razorpay"
)

type orderCreator interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*razorpay.Order, error)
}

// Service prices and creates gateway orders.
type Service interface {
	CreateOrder(ctx context.Context, product, currency string) (*razorpay.Order, error)
}

type service struct {
	gateway orderCreator
}

// NewService wires the order service to the payment gateway client.
func NewService(gateway orderCreator) (Service, error) {
	if gateway == nil {
		return nil, fmt.Errorf("payment gateway client required")
	}
	return &service{gateway: gateway}, nil
}

func (s *service) CreateOrder(ctx context.Context, product, currency string) (*razorpay.Order, error) {
	amount, err := AmountPaise(product)
	if err != nil {
		return nil, err
	}
	if currency == "" {
		currency = "INR"
	}

	receipt := "rcpt_" + uuid.NewString()
	order, err := s.gateway.CreateOrder(ctx, amount, currency, receipt)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create gateway order")
	}
	return order, nil
}
