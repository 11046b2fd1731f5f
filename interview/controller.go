package interview

import (
	"context"
	"fmt"
	"path/filepath"

	nexthire "github.com/nexthire/go-nexthire"
	"github.com/nexthire/go-nexthire/audio"
	"github.com/nexthire/go-nexthire/audio/capture"
	"github.com/nexthire/go-nexthire/gen"
	"github.com/nexthire/go-nexthire/stt"
	"github.com/nexthire/go-nexthire/tts"

	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"
)

// NoResponseText is reported as the candidate answer when no speech was
// understood.
const NoResponseText = "No response detected"

// Controller sequences the record, transcribe, generate, speak and
// conclusion-check cycle and owns the sessions it operates on. All external
// collaborator faults are translated into the typed error kinds before they
// reach the front door.
type Controller struct {
	c *capture.Capturer
	d *nexthire.Dispatcher
	i *gen.Interviewer
	o ControllerOptions
	r *Registry
	s tts.Speaker
	t *stt.Transcriber
}

type ControllerOptions struct {
	Language string `toml:"language"`

	// When set, every captured answer is archived as a wav file in this
	// directory.
	RecordingsDirPath string `toml:"recordings_dir_path"`
}

func NewController(c *capture.Capturer, t *stt.Transcriber, i *gen.Interviewer, s tts.Speaker, d *nexthire.Dispatcher, o ControllerOptions) *Controller {
	// Default language
	if o.Language == "" {
		o.Language = "en"
	}
	return &Controller{
		c: c,
		d: d,
		i: i,
		o: o,
		r: NewRegistry(),
		s: s,
		t: t,
	}
}

func (c *Controller) Registry() *Registry { return c.r }

type StartResult struct {
	Audio          []byte
	Question       string
	QuestionNumber int
}

// Start creates a fresh session under id, stores the resume context,
// requests the first interviewer question and synthesizes it. The session
// only transitions to active once the first question was obtained, so a
// failed start can be retried.
func (c *Controller) Start(ctx context.Context, id, resumeContext string) (r StartResult, err error) {
	// Create session
	var s *Session
	if s, err = c.r.create(id); err != nil {
		err = errors.Wrap(err, "interview: creating session failed")
		return
	}

	// Set context
	if err = s.setContext(resumeContext); err != nil {
		err = errors.Wrap(err, "interview: setting context failed")
		return
	}

	// Get first question
	var question string
	if question, err = c.i.FirstQuestion(ctx, resumeContext); err != nil {
		err = nexthire.NewTurnError(err, "interview: getting first question failed")
		return
	}

	// Activate session
	s.m.Lock()
	s.status = nexthire.ActiveStatus
	s.turnNumber = 1
	s.m.Unlock()

	// Append question
	s.append(nexthire.InterviewerRole, question)

	// Create result
	r = StartResult{
		Question:       question,
		QuestionNumber: 1,
	}

	// Synthesize
	r.Audio = c.synthesize(ctx, question)

	// Dispatch event
	if e, err := nexthire.NewEventSessionStartedEvent(*nexthire.NewServerIdentifier(), &nexthire.Identifier{Type: nexthire.UIIdentifierType}, nexthire.SessionStarted{
		Question:       question,
		QuestionNumber: 1,
		SessionID:      id,
	}); err != nil {
		astilog.Error(errors.Wrap(err, "interview: creating session started event failed"))
	} else {
		c.d.Dispatch(e)
	}
	return
}

type ListenResult struct {
	AIResponse      string
	Audio           []byte
	CandidateAnswer string
	InterviewEnd    bool
	QuestionNumber  int
}

// Listen records the candidate's answer, transcribes it and produces the
// interviewer's next utterance. An empty or low-confidence transcript yields
// a clarification request without advancing the turn number or invoking the
// generator. Generation failure after the turn number was advanced is a
// recoverable turn error that retains the transcribed answer.
func (c *Controller) Listen(ctx context.Context, id string) (r ListenResult, err error) {
	// Get session
	s, ok := c.r.Session(id)
	if !ok {
		err = nexthire.NewUsageError("interview: no session %s", id)
		return
	}

	// Acquire listen
	s.m.Lock()
	if s.status != nexthire.ActiveStatus {
		status := s.status
		s.m.Unlock()
		err = nexthire.NewUsageError("interview: session %s is %s, listen needs an active session", id, status)
		return
	}
	if s.listening {
		s.m.Unlock()
		err = nexthire.NewUsageError("interview: session %s is already listening", id)
		return
	}
	s.listening = true
	s.m.Unlock()

	// Release listen
	defer func() {
		s.m.Lock()
		s.listening = false
		s.m.Unlock()
	}()

	// Capture
	b, err := c.capture(ctx, id)
	if err != nil && errors.Cause(err) != capture.ErrNoAudio {
		err = errors.Wrap(err, "interview: capturing failed")
		return
	}

	// Transcribe
	var res stt.Result
	if errors.Cause(err) == capture.ErrNoAudio {
		err = nil
		res = stt.Result{LowConfidence: true}
	} else {
		c.archive(id, b)
		res = c.t.Transcribe(ctx, b, c.o.Language)
	}

	// Nothing understood: conserve conversational state, ask to repeat
	if res.LowConfidence {
		r = ListenResult{
			AIResponse:      gen.ClarificationText,
			CandidateAnswer: NoResponseText,
			QuestionNumber:  s.TurnNumber(),
		}
		return
	}

	// Record answer and advance turn
	s.m.Lock()
	if s.status != nexthire.ActiveStatus {
		s.m.Unlock()
		err = nexthire.NewUsageError("interview: session %s was ended while listening", id)
		return
	}
	s.turns = append(s.turns, nexthire.Turn{
		CreatedAt: timeNow(),
		Index:     s.turnNumber,
		Role:      nexthire.CandidateRole,
		Text:      res.Text,
	})
	s.turnNumber++
	n := s.turnNumber
	history := make([]nexthire.Turn, len(s.turns))
	copy(history, s.turns)
	resumeContext := s.resumeContext
	s.m.Unlock()

	// Create result
	r = ListenResult{
		CandidateAnswer: res.Text,
		QuestionNumber:  n,
	}

	// Generate response
	var response string
	if response, err = c.i.Respond(ctx, history, resumeContext, res.Text); err != nil {
		// The turn number stays advanced and the transcribed answer is
		// retained, the caller may retry.
		err = nexthire.NewTurnError(err, "interview: generating response failed")
		return
	}
	r.AIResponse = response

	// Check conclusion
	r.InterviewEnd = gen.IsConclusion(response)

	// Append response
	s.m.Lock()
	s.turns = append(s.turns, nexthire.Turn{
		CreatedAt: timeNow(),
		Index:     s.turnNumber,
		Role:      nexthire.InterviewerRole,
		Text:      response,
	})
	if r.InterviewEnd {
		s.status = nexthire.ConcludedStatus
	}
	s.m.Unlock()

	// Synthesize
	r.Audio = c.synthesize(ctx, response)

	// Dispatch events
	if e, err := nexthire.NewEventTurnCompletedEvent(*nexthire.NewServerIdentifier(), &nexthire.Identifier{Type: nexthire.UIIdentifierType}, nexthire.TurnCompleted{
		AIResponse:      r.AIResponse,
		CandidateAnswer: r.CandidateAnswer,
		InterviewEnd:    r.InterviewEnd,
		QuestionNumber:  r.QuestionNumber,
		SessionID:       id,
	}); err != nil {
		astilog.Error(errors.Wrap(err, "interview: creating turn completed event failed"))
	} else {
		c.d.Dispatch(e)
	}
	if r.InterviewEnd {
		astilog.Infof("interview: session %s concluded", id)
		if e, err := nexthire.NewEventSessionConcludedEvent(*nexthire.NewServerIdentifier(), &nexthire.Identifier{Type: nexthire.UIIdentifierType}, id); err != nil {
			astilog.Error(errors.Wrap(err, "interview: creating session concluded event failed"))
		} else {
			c.d.Dispatch(e)
		}
	}
	return
}

func (c *Controller) capture(ctx context.Context, id string) (b *audio.Buffer, err error) {
	// Dispatch event
	if e, err := nexthire.NewEventCaptureStartedEvent(*nexthire.NewServerIdentifier(), &nexthire.Identifier{Type: nexthire.UIIdentifierType}, id); err != nil {
		astilog.Error(errors.Wrap(err, "interview: creating capture started event failed"))
	} else {
		c.d.Dispatch(e)
	}

	// Make sure the stop is signaled
	defer func() {
		if e, err := nexthire.NewEventCaptureStoppedEvent(*nexthire.NewServerIdentifier(), &nexthire.Identifier{Type: nexthire.UIIdentifierType}, id); err != nil {
			astilog.Error(errors.Wrap(err, "interview: creating capture stopped event failed"))
		} else {
			c.d.Dispatch(e)
		}
	}()

	// Capture
	astilog.Debugf("interview: session %s listening", id)
	return c.c.Capture(ctx)
}

// archive stores the captured answer as a wav file, non-fatally: a failed
// write only costs the archive, never the turn.
func (c *Controller) archive(id string, b *audio.Buffer) {
	if c.o.RecordingsDirPath == "" || b == nil || b.Empty() {
		return
	}
	p := filepath.Join(c.o.RecordingsDirPath, fmt.Sprintf("%s-%d.wav", id, timeNow().UnixNano()))
	if err := audio.WriteWAVFile(p, b.Samples(), c.c.Options().SampleRate); err != nil {
		astilog.Error(errors.Wrapf(err, "interview: archiving recording to %s failed", p))
		return
	}
	astilog.Debugf("interview: archived recording to %s", p)
}

// synthesize converts text to audio, degrading to no audio on failure: the
// turn proceeds and is reported without it.
func (c *Controller) synthesize(ctx context.Context, text string) (b []byte) {
	if c.s == nil {
		return
	}
	var err error
	if b, err = c.s.Synthesize(ctx, text); err != nil {
		astilog.Error(errors.Wrap(err, "interview: synthesizing failed"))
		return nil
	}
	return
}

// StopCapture signals the in-flight capture, if any, to stop at the next
// chunk boundary. It reports whether a recording was in progress.
func (c *Controller) StopCapture() bool {
	return c.c.Control().RequestStop()
}

// End forces the session to conclude. Ending an already concluded session is
// a no-op; ending an idle one is a usage error.
func (c *Controller) End(id string) (err error) {
	// Get session
	s, ok := c.r.Session(id)
	if !ok {
		err = nexthire.NewUsageError("interview: no session %s", id)
		return
	}

	// Update status
	s.m.Lock()
	switch s.status {
	case nexthire.ConcludedStatus:
		s.m.Unlock()
		return
	case nexthire.IdleStatus:
		s.m.Unlock()
		err = nexthire.NewUsageError("interview: session %s was never started", id)
		return
	}
	s.status = nexthire.ConcludedStatus
	s.m.Unlock()

	// Interrupt a capture in progress
	c.c.Control().RequestStop()

	// Dispatch event
	astilog.Infof("interview: session %s ended", id)
	if e, err := nexthire.NewEventSessionConcludedEvent(*nexthire.NewServerIdentifier(), &nexthire.Identifier{Type: nexthire.UIIdentifierType}, id); err != nil {
		astilog.Error(errors.Wrap(err, "interview: creating session concluded event failed"))
	} else {
		c.d.Dispatch(e)
	}
	return
}

type Status struct {
	IsActive              bool
	CurrentQuestionNumber int
	SessionStatus         string
}

// Status reports the session state. An unknown id reports an idle session,
// matching what the front door advertised before the session was started.
func (c *Controller) Status(id string) (st Status) {
	s, ok := c.r.Session(id)
	if !ok {
		return Status{SessionStatus: nexthire.IdleStatus}
	}
	s.m.Lock()
	defer s.m.Unlock()
	return Status{
		IsActive:              s.status == nexthire.ActiveStatus,
		CurrentQuestionNumber: s.turnNumber,
		SessionStatus:         s.status,
	}
}
