package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingConfirmationSSML(t *testing.T) {
	got := BookingConfirmationSSML("Hidden Jazz Bars of Tokyo", "2026-09-15")

	assert.True(t, strings.HasPrefix(got, "<speak>"))
	assert.True(t, strings.HasSuffix(got, "</speak>"))
	assert.Contains(t, got, `<phoneme alphabet="ipa" ph="Hidden Jazz Bars of Tokyo">Hidden Jazz Bars of Tokyo</phoneme>`)
	assert.Contains(t, got, `<say-as interpret-as="date">2026-09-15</say-as>`)
	assert.Contains(t, got, `<break time="300ms"/>`)
}

func TestItinerarySummarySSML(t *testing.T) {
	got := ItinerarySummarySSML("Tokyo", 3)

	assert.Contains(t, got, "I've generated a 3-day trip for Tokyo.")
	assert.Contains(t, got, `<prosody rate="medium">local food tours</prosody>`)
}

func TestPaymentPromptSSML(t *testing.T) {
	got := PaymentPromptSSML("$85.00")

	assert.Contains(t, got, "The total comes to $85.00.")
	assert.Contains(t, got, "Please confirm to proceed with the payment.")
	assert.Contains(t, got, `<break time="120ms"/>`)
}

func TestSafetyAlertSSML(t *testing.T) {
	got := SafetyAlertSSML()

	assert.Contains(t, got, `<prosody volume="loud">Safety Notice.</prosody>`)
	assert.Contains(t, got, "share your live location")
}

func TestErrorFallbackSSML(t *testing.T) {
	got := ErrorFallbackSSML()

	assert.True(t, strings.HasPrefix(got, "<speak>"))
	assert.Contains(t, got, "I'm having trouble connecting right now.")
	assert.Contains(t, got, "Please try again later.")
}
