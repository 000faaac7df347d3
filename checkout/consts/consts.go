package consts

import "time"

// Event pricing consts
const (
	// DefaultPriceCents is the ticket price in minor currency units used
	// when EVENT_PRICE_CENTS is not set.
	DefaultPriceCents int64 = 18000
	DefaultCurrency         = "eur"
	DefaultLocale           = "pt-PT"
	EventSlug               = "cafe-com-vendas"
)

// Redirect scheduling consts
const (
	// RedirectDelayImmediate is applied after a confirmed card payment.
	RedirectDelayImmediate = 5 * time.Second

	// RedirectDelayVoucher keeps Multibanco payment references on screen
	// long enough to be transcribed.
	RedirectDelayVoucher = 12 * time.Second
)

// Session lifecycle consts
const (
	SessionTTL           = 30 * time.Minute
	SessionSweepInterval = 5 * time.Minute
)

// PaymentMethodOrder is the tab priority for the embedded payment element.
// Multibanco leads for the Portuguese market.
var PaymentMethodOrder = []string{"multibanco", "card", "sepa_debit"}
