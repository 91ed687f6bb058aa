package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/vedicwisdom/funnel-backend/pkg/errors"
	"github.com/vedicwisdom/funnel-backend/pkg/razorpay"
)

type stubGateway struct {
	gotAmount   int64
	gotCurrency string
	order       *razorpay.Order
	err         error
}

func (s *stubGateway) CreateOrder(_ context.Context, amount int64, currency, receipt string) (*razorpay.Order, error) {
	s.gotAmount = amount
	s.gotCurrency = currency
	if s.err != nil {
		return nil, s.err
	}
	if s.order != nil {
		return s.order, nil
	}
	return &razorpay.Order{ID: "order_test", Amount: amount, Currency: currency}, nil
}

func TestAmountPaiseServerAuthoritative(t *testing.T) {
	cases := map[string]int64{
		"vedic":   49900,
		"tarot":   29900,
		"bundle":  69900,
		"section": 4900,
	}
	for product, want := range cases {
		got, err := AmountPaise(product)
		require.NoError(t, err)
		assert.Equal(t, want, got, product)
	}

	_, err := AmountPaise("custom")
	require.Error(t, err)
}

func TestAmountRupees(t *testing.T) {
	assert.Equal(t, "499", AmountRupees("vedic"))
	assert.Equal(t, "699", AmountRupees("bundle"))
	assert.Equal(t, "", AmountRupees("nope"))
}

func TestCreateOrderUsesServerPricing(t *testing.T) {
	gw := &stubGateway{}
	svc, err := NewService(gw)
	require.NoError(t, err)

	order, err := svc.CreateOrder(context.Background(), "bundle", "")
	require.NoError(t, err)
	assert.Equal(t, int64(69900), gw.gotAmount)
	assert.Equal(t, "INR", gw.gotCurrency)
	assert.Equal(t, "order_test", order.ID)
}

func TestCreateOrderRejectsUnknownProduct(t *testing.T) {
	svc, err := NewService(&stubGateway{})
	require.NoError(t, err)

	_, err = svc.CreateOrder(context.Background(), "after-hours", "INR")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestCreateOrderWrapsGatewayFailure(t *testing.T) {
	gw := &stubGateway{err: errors.New("gateway down")}
	svc, err := NewService(gw)
	require.NoError(t, err)

	_, err = svc.CreateOrder(context.Background(), "vedic", "INR")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())
}
