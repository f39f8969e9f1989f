package upload

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vkstore/resume-dashboard/internal/types"
)

// Progress simulation parameters. The indicator advances in fixed increments
// on a fixed interval while the request is in flight, capped below the
// ceiling until the server responds, at which point it is forced to 100.
const (
	ProgressInterval  = 200 * time.Millisecond
	ProgressIncrement = 10
	ProgressCeiling   = 90
	ProgressDone      = 100
)

// SuccessRedirectDelay is how long the success message stays up before the
// pipeline hands off to the dashboard.
const SuccessRedirectDelay = 2 * time.Second

// Success and failure messages shown by the upload screen.
const (
	MsgUploadSuccess = "Resume uploaded successfully! Redirecting..."
	MsgUploadFailed  = "Upload failed."
	MsgNetworkError  = "Network error. Please try again."
)

// State is the pipeline's lifecycle position.
type State int

const (
	Idle State = iota
	Validating
	Valid
	Submitting
	Succeeded
	Failed
)

// Submitter is the slice of the API gateway the pipeline depends on.
type Submitter interface {
	SubmitResume(ctx context.Context, email, filename string, file io.Reader, description string) (types.Status, error)
}

// ProgressFunc receives each progress value as it changes, 0 through 100.
type ProgressFunc func(percent int)

// Outcome is the result of one submission attempt.
type Outcome struct {
	OK                  bool
	Message             string
	RedirectToSignIn    bool
	NavigateToDashboard bool
}

// Pipeline owns one upload attempt for one screen instance. The ticker and
// the post-success sleep are injectable so tests advance time
// deterministically instead of waiting on the wall clock.
type Pipeline struct {
	gateway    Submitter
	identifier string
	logger     *zap.Logger
	onProgress ProgressFunc

	// newTicker returns a tick channel and its cancel function. The cancel
	// must run on every exit path; a leaked ticker keeps firing forever.
	newTicker func(d time.Duration) (<-chan time.Time, func())
	sleep     func(d time.Duration)
	openFile  func(path string) (io.ReadCloser, error)

	mu        sync.Mutex
	state     State
	candidate *Candidate
	progress  int
}

// NewPipeline creates an idle pipeline bound to one session identifier.
// The identifier may be empty; Submit then redirects to sign-in.
func NewPipeline(gateway Submitter, identifier string, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		gateway:    gateway,
		identifier: identifier,
		logger:     logger,
		newTicker: func(d time.Duration) (<-chan time.Time, func()) {
			t := time.NewTicker(d)
			return t.C, t.Stop
		},
		sleep: time.Sleep,
		openFile: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

// SetProgressFunc registers the progress observer.
func (p *Pipeline) SetProgressFunc(fn ProgressFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onProgress = fn
}

// Select validates the file at path and retains it as the pending candidate.
// An invalid selection returns the pipeline to Idle with no candidate.
func (p *Pipeline) Select(path string) error {
	p.setState(Validating)
	candidate, err := NewCandidate(path)
	if err != nil {
		p.mu.Lock()
		p.candidate = nil
		p.state = Idle
		p.mu.Unlock()
		return err
	}
	p.mu.Lock()
	p.candidate = candidate
	p.state = Valid
	p.mu.Unlock()
	return nil
}

// SetDescription attaches the target-role text to the pending candidate.
func (p *Pipeline) SetDescription(desc string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.candidate != nil {
		p.candidate.Description = desc
	}
}

// Remove discards the pending candidate.
func (p *Pipeline) Remove() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.candidate = nil
	p.state = Idle
}

// State returns the pipeline's current state.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Candidate returns the pending candidate, nil when none is selected.
func (p *Pipeline) Candidate() *Candidate {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.candidate
}

// Progress returns the last reported progress value.
func (p *Pipeline) Progress() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.progress
}

// Submit runs the submission: local checks first (no gateway call on any of
// their failures), then the multipart upload with simulated progress. On a
// confirmed upload the candidate is cleared, the success message shown, and
// after a fixed delay the outcome asks for dashboard navigation. On rejection
// or transport failure the candidate is retained for retry.
func (p *Pipeline) Submit(ctx context.Context) Outcome {
	p.mu.Lock()
	candidate := p.candidate
	p.mu.Unlock()

	if candidate == nil {
		return Outcome{Message: MsgNoFileAtSubmit}
	}
	if isBlank(candidate.Description) {
		return Outcome{Message: MsgMissingDescription}
	}
	if p.identifier == "" {
		return Outcome{RedirectToSignIn: true}
	}

	file, err := p.openFile(candidate.Path)
	if err != nil {
		p.logger.Warn("resume file vanished before submit",
			zap.String("path", candidate.Path), zap.Error(err))
		return Outcome{Message: MsgNoFileAtSubmit}
	}
	defer func() { _ = file.Close() }()

	p.setState(Submitting)
	p.setProgress(0)

	done := make(chan struct{})
	finished := make(chan struct{})
	tick, stop := p.newTicker(ProgressInterval)
	defer stop()
	go func() {
		defer close(finished)
		for {
			select {
			case <-done:
				return
			case <-tick:
				p.advanceProgress()
			}
		}
	}()

	status, err := p.gateway.SubmitResume(ctx, p.identifier, candidate.Name, file, candidate.Description)
	close(done)
	<-finished
	stop()

	if err != nil {
		p.logger.Warn("resume upload transport failure", zap.Error(err))
		p.setState(Failed)
		p.setProgress(0)
		return Outcome{Message: MsgNetworkError}
	}

	// The server responded: the indicator jumps to done regardless of how
	// far the simulation got.
	p.setProgress(ProgressDone)

	if !status.Status {
		p.setState(Failed)
		p.setProgress(0)
		message := status.Message
		if message == "" {
			message = MsgUploadFailed
		}
		return Outcome{Message: message}
	}

	p.mu.Lock()
	p.state = Succeeded
	p.candidate = nil
	p.mu.Unlock()

	p.sleep(SuccessRedirectDelay)
	return Outcome{OK: true, Message: MsgUploadSuccess, NavigateToDashboard: true}
}

// advanceProgress bumps the simulated indicator, never past the ceiling and
// only while a submission is in flight.
func (p *Pipeline) advanceProgress() {
	p.mu.Lock()
	if p.state != Submitting || p.progress >= ProgressCeiling {
		p.mu.Unlock()
		return
	}
	p.progress += ProgressIncrement
	value := p.progress
	fn := p.onProgress
	p.mu.Unlock()
	if fn != nil {
		fn(value)
	}
}

func (p *Pipeline) setProgress(value int) {
	p.mu.Lock()
	p.progress = value
	fn := p.onProgress
	p.mu.Unlock()
	if fn != nil {
		fn(value)
	}
}

func (p *Pipeline) setState(state State) {
	p.mu.Lock()
	p.state = state
	p.mu.Unlock()
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
