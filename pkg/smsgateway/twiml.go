// Package smsgateway speaks the inbound side of the Twilio messaging webhook:
// TwiML replies and request signature validation.
package smsgateway

import (
	"github.com/twilio/twilio-go/client"
	"github.com/twilio/twilio-go/twiml"
)

// SignatureHeader carries the request signature on inbound webhooks
const SignatureHeader = "X-Twilio-Signature"

// Reply renders a messaging response containing a single message
func Reply(text string) (string, error) {
	return twiml.Messages([]twiml.Element{
		twiml.MessagingMessage{Body: text},
	})
}

// SignatureValidator checks X-Twilio-Signature against the public webhook URL
type SignatureValidator struct {
	validator  client.RequestValidator
	webhookURL string
}

// NewSignatureValidator creates a validator for webhooks delivered to webhookURL
func NewSignatureValidator(authToken, webhookURL string) *SignatureValidator {
	return &SignatureValidator{
		validator:  client.NewRequestValidator(authToken),
		webhookURL: webhookURL,
	}
}

// Validate reports whether signature matches the posted form params
func (v *SignatureValidator) Validate(params map[string]string, signature string) bool {
	if signature == "" {
		return false
	}
	return v.validator.Validate(v.webhookURL, params, signature)
}
