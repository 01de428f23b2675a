package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/htoohtoo/storefront/config"
	"github.com/htoohtoo/storefront/pkg/logger"
	"github.com/htoohtoo/storefront/pkg/metrics"
)

// PaymentGateway simulates a payment processor: every charge succeeds after
// a fixed delay. The delay always runs to completion, there is no
// cancellation path.
type PaymentGateway struct {
	delay time.Duration
}

// NewPaymentGateway builds a gateway with the given processing delay.
// Tests pass zero.
func NewPaymentGateway(delay time.Duration) *PaymentGateway {
	return &PaymentGateway{delay: delay}
}

// NewPaymentGatewayFromConfig uses PAYMENT_DELAY_MS.
func NewPaymentGatewayFromConfig() *PaymentGateway {
	return NewPaymentGateway(config.PaymentDelay())
}

// Charge processes amount via method and returns a payment reference.
func (g *PaymentGateway) Charge(amount decimal.Decimal, method string) string {
	start := time.Now()
	time.Sleep(g.delay)
	metrics.PaymentDuration.Observe(time.Since(start).Seconds())

	ref := "pay_" + uuid.NewString()
	logger.Debug("payment: charged", "amount", amount.String(), "method", method, "ref", ref)
	return ref
}
