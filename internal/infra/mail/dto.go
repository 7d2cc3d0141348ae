package mail

// EmailJob is the provider-agnostic payload handed to the delivery gateway.
// It is created by the composer and consumed exactly once; never persisted.
type EmailJob struct {
	To       string
	Subject  string
	HTMLBody string
	From     string
}

const (
	ProviderPrimary   = "primary"
	ProviderSecondary = "secondary"
)

// DeliveryOutcome is the normalized result of one delivery attempt chain.
// ProviderUsed is "primary", "secondary", or empty when nothing got through.
// Service carries the concrete provider name for the response body.
type DeliveryOutcome struct {
	Succeeded    bool
	ProviderUsed string
	Service      string
	ErrorDetail  string
}
