package speech

import (
	"errors"
	"strings"
	"sync"

	"localguide/internal/modules/assistant"
)

var (
	ErrSoundDisabled = errors.New("sound is disabled")
	ErrNoEngine      = errors.New("speech synthesis not available")
)

// Synthesizer reads assistant replies aloud. Text is redacted and
// stripped of markup before it reaches the engine, and a new request
// always cancels whatever is still playing: last request wins, nothing
// queues.
type Synthesizer struct {
	mu       sync.Mutex
	engine   SynthesisEngine
	persona  assistant.Persona
	enabled  bool
	speaking bool
	selected Voice
}

func NewSynthesizer(engine SynthesisEngine) *Synthesizer {
	s := &Synthesizer{engine: engine, persona: assistant.DefaultPersona}
	if engine != nil {
		s.selected = pickDefaultVoice(engine.Voices())
	}
	return s
}

// pickDefaultVoice prefers en-GB, then en-US, then whatever is first.
func pickDefaultVoice(voices []Voice) Voice {
	for _, lang := range []string{"en-GB", "en-US"} {
		for _, v := range voices {
			if v.Lang == lang {
				return v
			}
		}
	}
	if len(voices) > 0 {
		return voices[0]
	}
	return Voice{}
}

func (s *Synthesizer) IsSpeaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking
}

func (s *Synthesizer) IsEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// ToggleSound flips the mute state and reports the new one. Muting also
// cancels any speech in flight.
func (s *Synthesizer) ToggleSound() bool {
	s.mu.Lock()
	wasEnabled := s.enabled
	s.enabled = !s.enabled
	s.mu.Unlock()

	if wasEnabled {
		s.Cancel()
	}
	return !wasEnabled
}

// Speak sanitizes the text and hands it to the engine in the requested
// language. An exact language match is preferred; otherwise the default
// voice carries the utterance.
func (s *Synthesizer) Speak(text, language string) error {
	s.mu.Lock()
	if !s.enabled {
		s.mu.Unlock()
		return ErrSoundDisabled
	}
	if s.engine == nil {
		s.mu.Unlock()
		return ErrNoEngine
	}
	voice := s.voiceFor(language)
	s.mu.Unlock()

	plain := StripMarkup(Redact(text))

	s.engine.Cancel()

	u := Utterance{
		Text:   plain,
		Voice:  voice,
		Rate:   s.persona.Rate,
		Pitch:  s.persona.Pitch,
		Volume: s.persona.Volume,
	}
	if err := s.engine.Speak(u); err != nil {
		return err
	}

	s.mu.Lock()
	s.speaking = true
	s.mu.Unlock()
	return nil
}

func (s *Synthesizer) Cancel() {
	s.mu.Lock()
	s.speaking = false
	engine := s.engine
	s.mu.Unlock()

	if engine != nil {
		engine.Cancel()
	}
}

// HandleEnd is called by the engine when playback finishes or fails.
func (s *Synthesizer) HandleEnd() {
	s.mu.Lock()
	s.speaking = false
	s.mu.Unlock()
}

// voiceFor is called with the mutex held.
func (s *Synthesizer) voiceFor(language string) Voice {
	if language == "" || s.selected.Lang == language {
		return s.selected
	}
	for _, v := range s.engine.Voices() {
		if strings.HasPrefix(v.Lang, language) {
			return v
		}
	}
	return s.selected
}
