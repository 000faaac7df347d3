// Package elements builds the embedded payment element configuration served
// to the funnel page. The client mounts the processor's payment element from
// this config and reports its lifecycle back as domain.ElementEvent values.
package elements

import (
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/consts"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/domain"
)

// Appearance is the processor appearance API payload for the element.
type Appearance struct {
	Theme     string            `json:"theme"`
	Variables map[string]string `json:"variables,omitempty"`
}

// DefaultValues prefills the element's billing details from the lead.
type DefaultValues struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Config initializes the processor elements object client-side exactly once
// per authorization.
type Config struct {
	ClientSecret       string        `json:"client_secret"`
	Locale             string        `json:"locale"`
	Layout             string        `json:"layout"`
	PaymentMethodOrder []string      `json:"payment_method_order"`
	Appearance         Appearance    `json:"appearance"`
	DefaultValues      DefaultValues `json:"default_values"`
}

// BuildConfig derives the element configuration from an authorization and
// the captured lead. Pure.
func BuildConfig(auth *domain.PaymentAuthorization, locale string, lead *domain.LeadRecord) *Config {
	if locale == "" {
		locale = consts.DefaultLocale
	}

	config := &Config{
		ClientSecret:       auth.ClientSecret,
		Locale:             locale,
		Layout:             "tabs",
		PaymentMethodOrder: append([]string(nil), consts.PaymentMethodOrder...),
		Appearance: Appearance{
			Theme: "stripe",
			Variables: map[string]string{
				"colorPrimary": "#81171F",
				"fontFamily":   "Lora, serif",
			},
		},
	}

	if lead != nil {
		config.DefaultValues = DefaultValues{
			Name:  lead.FullName,
			Email: lead.Email,
			Phone: lead.PhoneCountryCode + lead.PhoneNumber,
		}
	}

	return config
}
