package shopify

// CustomerPayload wraps a customer record the way the Admin REST API
// expects it on POST /customers.json.
type CustomerPayload struct {
	Customer Customer `json:"customer"`
}

// Customer is the outbound Shopify customer record. Every customer the
// relay creates is enabled, email-verified, and opted into marketing.
type Customer struct {
	Email                 string              `json:"email"`
	FirstName             string              `json:"first_name"`
	LastName              string              `json:"last_name"`
	Phone                 string              `json:"phone"`
	State                 string              `json:"state"`
	VerifiedEmail         bool                `json:"verified_email"`
	AcceptsMarketing      bool                `json:"accepts_marketing"`
	Tags                  []string            `json:"tags"`
	Metafields            []Metafield         `json:"metafields"`
	EmailMarketingConsent MarketingConsent    `json:"email_marketing_consent"`
	SMSMarketingConsent   SMSMarketingConsent `json:"sms_marketing_consent"`
}

// Metafield is a single customer metafield entry
type Metafield struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	Type      string `json:"type"`
}

// MarketingConsent records the email marketing opt-in state
type MarketingConsent struct {
	State            string `json:"state"`
	OptInLevel       string `json:"opt_in_level"`
	ConsentUpdatedAt string `json:"consent_updated_at"`
}

// SMSMarketingConsent records the SMS opt-in state plus where Shopify
// should attribute the consent to
type SMSMarketingConsent struct {
	State                string `json:"state"`
	OptInLevel           string `json:"opt_in_level"`
	ConsentUpdatedAt     string `json:"consent_updated_at"`
	ConsentCollectedFrom string `json:"consent_collected_from"`
}
