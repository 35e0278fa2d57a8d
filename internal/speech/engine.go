// Package speech wraps host-provided speech engines behind small ports.
// The engines themselves (microphone capture, audio output) live outside
// this process; the package owns the state, error mapping and text
// sanitization around them.
package speech

// Voice identifies one synthesis voice by its BCP 47 language tag.
type Voice struct {
	Name string
	Lang string
}

// Utterance is a single synthesis request, already sanitized.
type Utterance struct {
	Text   string
	Voice  Voice
	Rate   float64
	Pitch  float64
	Volume float64
}

// RecognitionEngine is the speech-to-text port. Implementations report
// results and errors back through the Recognizer's Handle* methods.
type RecognitionEngine interface {
	Start() error
	Stop()
	Abort()
}

// SynthesisEngine is the text-to-speech port.
type SynthesisEngine interface {
	Voices() []Voice
	Speak(u Utterance) error
	Cancel()
}
