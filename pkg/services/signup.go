package services

import (
	"fmt"
	"log"
	"time"

	"shopify-relay/pkg/clients/shopify"
	"shopify-relay/pkg/models"
)

// Fixed consent values stamped onto every customer the relay creates
const (
	consentState         = "subscribed"
	consentOptInLevel    = "single_opt_in"
	smsConsentSource     = "OTHER"
	hearingLossNamespace = "custom"
	hearingLossKey       = "hearing_loss_level"
)

// SignupService defines the interface for relaying signups to Shopify
type SignupService interface {
	AddCustomer(data models.SignupRequest) (*shopify.CreateCustomerResult, error)
}

type signupServiceImpl struct {
	shopifyClient shopify.Client
}

// NewSignupService creates a new signup service
func NewSignupService(shopifyClient shopify.Client) SignupService {
	return &signupServiceImpl{
		shopifyClient: shopifyClient,
	}
}

// AddCustomer builds the Shopify customer payload from a validated signup
// and forwards it upstream. The returned result carries the upstream
// outcome; an error means the call itself failed.
func (s *signupServiceImpl) AddCustomer(data models.SignupRequest) (*shopify.CreateCustomerResult, error) {
	payload := BuildCustomerPayload(data, time.Now().UTC())

	log.Printf("Forwarding signup for %s to Shopify", data.Email)

	result, err := s.shopifyClient.CreateCustomer(payload)
	if err != nil {
		return nil, fmt.Errorf("error adding customer to Shopify: %w", err)
	}

	return result, nil
}

// BuildCustomerPayload maps a validated signup onto the Shopify customer
// shape. Pure apart from the caller-supplied timestamp: names and phone
// default to empty strings, the hearing loss level (when present) becomes
// one tag and one metafield, and every customer is stamped enabled,
// verified, and subscribed to email and SMS marketing.
func BuildCustomerPayload(data models.SignupRequest, now time.Time) shopify.CustomerPayload {
	consentUpdatedAt := now.Format(time.RFC3339)

	tags := []string{}
	metafields := []shopify.Metafield{}
	if data.HearingLossLevel != "" {
		tags = append(tags, data.HearingLossLevel)
		metafields = append(metafields, shopify.Metafield{
			Namespace: hearingLossNamespace,
			Key:       hearingLossKey,
			Value:     data.HearingLossLevel,
			Type:      "single_line_text_field",
		})
	}

	return shopify.CustomerPayload{
		Customer: shopify.Customer{
			Email:            data.Email,
			FirstName:        data.FirstName,
			LastName:         data.LastName,
			Phone:            data.Phone,
			State:            "enabled",
			VerifiedEmail:    true,
			AcceptsMarketing: true,
			Tags:             tags,
			Metafields:       metafields,
			EmailMarketingConsent: shopify.MarketingConsent{
				State:            consentState,
				OptInLevel:       consentOptInLevel,
				ConsentUpdatedAt: consentUpdatedAt,
			},
			SMSMarketingConsent: shopify.SMSMarketingConsent{
				State:                consentState,
				OptInLevel:           consentOptInLevel,
				ConsentUpdatedAt:     consentUpdatedAt,
				ConsentCollectedFrom: smsConsentSource,
			},
		},
	}
}
