package assistant

import "fmt"

// Persona holds the voice attributes every spoken reply uses.
type Persona struct {
	Name   string
	Rate   float64
	Pitch  float64
	Volume float64
}

var DefaultPersona = Persona{
	Name:   "LocalGuide AI",
	Rate:   0.95, // slightly slower for clarity
	Pitch:  1.0,
	Volume: 1.0,
}

func BookingConfirmationSSML(eventName, date string) string {
	return fmt.Sprintf(`<speak>
  <p>Booking confirmed for <phoneme alphabet="ipa" ph=%q>%s</phoneme>.</p>
  <break time="300ms"/>
  <p>I've scheduled it for <say-as interpret-as="date">%s</say-as>.</p>
</speak>`, eventName, eventName, date)
}

func ItinerarySummarySSML(city string, days int) string {
	return fmt.Sprintf(`<speak>
  <p>I've generated a %d-day trip for %s.</p>
  <break time="300ms"/>
  <p>It includes <prosody rate="medium">local food tours</prosody> and hidden gems.</p>
</speak>`, days, city)
}

func PaymentPromptSSML(amount string) string {
	return fmt.Sprintf(`<speak>
  The total comes to %s.
  <break time="120ms"/>
  Please confirm to proceed with the payment.
</speak>`, amount)
}

func SafetyAlertSSML() string {
	return `<speak>
  <prosody volume="loud">Safety Notice.</prosody>
  <break time="200ms"/>
  This area has a weather alert. Would you like to share your live location?
</speak>`
}

func ErrorFallbackSSML() string {
	return `<speak>
  I'm having trouble connecting right now. <break time="200ms"/> Please try again later.
</speak>`
}
