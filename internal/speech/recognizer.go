package speech

import (
	"errors"
	"sync"
)

var ErrNotSupported = errors.New("speech recognition not supported")

const (
	msgNotAllowed   = "Microphone access denied. Please allow permissions in browser settings."
	msgNoSpeech     = "No speech detected. Please try again."
	msgNotSupported = "Speech recognition not supported in this browser."
)

// Recognizer drives a RecognitionEngine in non-continuous, interim-results
// mode. Whatever path a session ends on, listening is false afterwards.
type Recognizer struct {
	mu         sync.Mutex
	engine     RecognitionEngine
	listening  bool
	transcript string
	lastError  string
}

func NewRecognizer(engine RecognitionEngine) *Recognizer {
	r := &Recognizer{engine: engine}
	if engine == nil {
		r.lastError = msgNotSupported
	}
	return r
}

func (r *Recognizer) IsSupported() bool { return r.engine != nil }

func (r *Recognizer) IsListening() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listening
}

func (r *Recognizer) Transcript() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.transcript
}

// LastError returns the user-facing message from the most recent failure,
// or "" when the last session ended cleanly.
func (r *Recognizer) LastError() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastError
}

// Start begins a listening session, clearing the previous transcript and
// error. Starting while already listening is a no-op.
func (r *Recognizer) Start() error {
	r.mu.Lock()
	if r.engine == nil {
		r.mu.Unlock()
		return ErrNotSupported
	}
	if r.listening {
		r.mu.Unlock()
		return nil
	}
	r.transcript = ""
	r.lastError = ""
	r.listening = true
	r.mu.Unlock()

	if err := r.engine.Start(); err != nil {
		r.mu.Lock()
		r.listening = false
		r.mu.Unlock()
		return err
	}
	return nil
}

func (r *Recognizer) Stop() {
	r.mu.Lock()
	if !r.listening {
		r.mu.Unlock()
		return
	}
	r.listening = false
	r.mu.Unlock()

	r.engine.Stop()
}

func (r *Recognizer) ResetTranscript() {
	r.mu.Lock()
	r.transcript = ""
	r.mu.Unlock()
}

// Close aborts any in-flight session. Safe to call regardless of state.
func (r *Recognizer) Close() {
	r.mu.Lock()
	r.listening = false
	r.mu.Unlock()

	if r.engine != nil {
		r.engine.Abort()
	}
}

// HandleResult is called by the engine with the transcript so far,
// interim results included.
func (r *Recognizer) HandleResult(transcript string) {
	r.mu.Lock()
	r.transcript = transcript
	r.mu.Unlock()
}

// HandleError maps known engine error codes to user-facing messages and
// ends the session.
func (r *Recognizer) HandleError(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch code {
	case "not-allowed":
		r.lastError = msgNotAllowed
	case "no-speech":
		r.lastError = msgNoSpeech
	default:
		r.lastError = code
	}
	r.listening = false
}

// HandleEnd is called by the engine when a session finishes on its own.
func (r *Recognizer) HandleEnd() {
	r.mu.Lock()
	r.listening = false
	r.mu.Unlock()
}
