package speech

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSynthesisEngine struct {
	voices   []Voice
	spoken   []Utterance
	cancels  int
	calls    []string // order of Cancel/Speak calls
	speakErr error
}

func (f *fakeSynthesisEngine) Voices() []Voice { return f.voices }

func (f *fakeSynthesisEngine) Speak(u Utterance) error {
	if f.speakErr != nil {
		return f.speakErr
	}
	f.spoken = append(f.spoken, u)
	f.calls = append(f.calls, "speak")
	return nil
}

func (f *fakeSynthesisEngine) Cancel() {
	f.cancels++
	f.calls = append(f.calls, "cancel")
}

func britishVoices() []Voice {
	return []Voice{
		{Name: "Daniel", Lang: "en-GB"},
		{Name: "Samantha", Lang: "en-US"},
		{Name: "Carmen", Lang: "es-ES"},
	}
}

func TestSpeakDisabledByDefault(t *testing.T) {
	engine := &fakeSynthesisEngine{voices: britishVoices()}
	s := NewSynthesizer(engine)

	err := s.Speak("hello", "en-GB")
	assert.True(t, errors.Is(err, ErrSoundDisabled))
	assert.Empty(t, engine.spoken)
}

func TestSpeakRedactsBeforeEngine(t *testing.T) {
	engine := &fakeSynthesisEngine{voices: britishVoices()}
	s := NewSynthesizer(engine)
	s.ToggleSound()

	require.NoError(t, s.Speak("charge card 4111111111111111 now", "en-GB"))
	require.Len(t, engine.spoken, 1)
	assert.NotContains(t, engine.spoken[0].Text, "4111")
	assert.Contains(t, engine.spoken[0].Text, "[hidden details]")
}

func TestSpeakStripsMarkup(t *testing.T) {
	engine := &fakeSynthesisEngine{voices: britishVoices()}
	s := NewSynthesizer(engine)
	s.ToggleSound()

	require.NoError(t, s.Speak("<speak><p>Booking confirmed.</p></speak>", "en-GB"))
	require.Len(t, engine.spoken, 1)
	assert.Equal(t, "Booking confirmed.", engine.spoken[0].Text)
}

func TestSpeakCancelsBeforeSpeaking(t *testing.T) {
	engine := &fakeSynthesisEngine{voices: britishVoices()}
	s := NewSynthesizer(engine)
	s.ToggleSound()

	require.NoError(t, s.Speak("first", "en-GB"))
	require.NoError(t, s.Speak("second", "en-GB"))

	// every Speak is preceded by a Cancel: last request wins, no queue
	assert.Equal(t, []string{"cancel", "speak", "cancel", "speak"}, engine.calls)
}

func TestVoiceSelection(t *testing.T) {
	engine := &fakeSynthesisEngine{voices: britishVoices()}
	s := NewSynthesizer(engine)
	s.ToggleSound()

	require.NoError(t, s.Speak("hola", "es-ES"))
	require.NoError(t, s.Speak("hello", "en-GB"))
	require.NoError(t, s.Speak("unknown", "bn-BD"))

	require.Len(t, engine.spoken, 3)
	assert.Equal(t, "es-ES", engine.spoken[0].Voice.Lang, "exact language match preferred")
	assert.Equal(t, "en-GB", engine.spoken[1].Voice.Lang)
	assert.Equal(t, "en-GB", engine.spoken[2].Voice.Lang, "no match falls back to the default voice")
}

func TestDefaultVoicePreference(t *testing.T) {
	onlyUS := &fakeSynthesisEngine{voices: []Voice{{Name: "Samantha", Lang: "en-US"}, {Name: "Carmen", Lang: "es-ES"}}}
	s := NewSynthesizer(onlyUS)
	s.ToggleSound()
	require.NoError(t, s.Speak("hi", ""))
	assert.Equal(t, "en-US", onlyUS.spoken[0].Voice.Lang)

	noEnglish := &fakeSynthesisEngine{voices: []Voice{{Name: "Carmen", Lang: "es-ES"}}}
	s2 := NewSynthesizer(noEnglish)
	s2.ToggleSound()
	require.NoError(t, s2.Speak("hi", ""))
	assert.Equal(t, "es-ES", noEnglish.spoken[0].Voice.Lang)
}

func TestSpeakAppliesPersonaAttributes(t *testing.T) {
	engine := &fakeSynthesisEngine{voices: britishVoices()}
	s := NewSynthesizer(engine)
	s.ToggleSound()

	require.NoError(t, s.Speak("hello", "en-GB"))
	u := engine.spoken[0]
	assert.InDelta(t, 0.95, u.Rate, 0.0001)
	assert.InDelta(t, 1.0, u.Pitch, 0.0001)
	assert.InDelta(t, 1.0, u.Volume, 0.0001)
}

func TestSpeakingStateAndCancel(t *testing.T) {
	engine := &fakeSynthesisEngine{voices: britishVoices()}
	s := NewSynthesizer(engine)
	s.ToggleSound()

	require.NoError(t, s.Speak("hello", "en-GB"))
	assert.True(t, s.IsSpeaking())

	s.HandleEnd()
	assert.False(t, s.IsSpeaking())

	require.NoError(t, s.Speak("again", "en-GB"))
	s.Cancel()
	assert.False(t, s.IsSpeaking())
}

func TestToggleSoundOffCancelsSpeech(t *testing.T) {
	engine := &fakeSynthesisEngine{voices: britishVoices()}
	s := NewSynthesizer(engine)

	assert.True(t, s.ToggleSound())
	require.NoError(t, s.Speak("hello", "en-GB"))
	cancelsBefore := engine.cancels

	assert.False(t, s.ToggleSound())
	assert.False(t, s.IsEnabled())
	assert.False(t, s.IsSpeaking())
	assert.Greater(t, engine.cancels, cancelsBefore)

	err := s.Speak("muted", "en-GB")
	assert.True(t, errors.Is(err, ErrSoundDisabled))
}

func TestNoEngine(t *testing.T) {
	s := NewSynthesizer(nil)
	s.ToggleSound()

	err := s.Speak("hello", "en-GB")
	assert.True(t, errors.Is(err, ErrNoEngine))
}
