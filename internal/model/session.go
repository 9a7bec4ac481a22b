package model

// Session holds the in-memory UI state of one application run. It is owned by
// the UI thread; the worker only ever returns a Result that the UI applies.
type Session struct {
	InputPath  string
	Format     Format
	OutputPath string
	State      SessionState
	LastError  *ConversionError

	currentJob string
}

// NewSession returns an idle session with the default output format
func NewSession() *Session {
	return &Session{
		Format: DefaultFormat,
		State:  StateIdle,
	}
}

// Converting reports whether a job is in flight
func (s *Session) Converting() bool {
	return s.State.IsActive()
}

// SelectFile records the chosen input. An empty path, or any path while a
// job is in flight, leaves everything as is.
func (s *Session) SelectFile(path string) bool {
	if path == "" || s.Converting() {
		return false
	}
	s.InputPath = path
	if s.State == StateIdle || s.State.IsFinished() {
		// A previous output belongs to the old input; download waits for the next success
		s.State = StateFileChosen
	}
	return true
}

// SelectFormat updates the output format. It is allowed in every state.
func (s *Session) SelectFormat(f Format) {
	s.Format = f
}

// BeginConversion validates the session and returns the job to run
func (s *Session) BeginConversion() (Job, error) {
	if s.InputPath == "" {
		return Job{}, NewConversionError(ErrMissingInput, "no input file selected")
	}
	if !s.Format.IsValid() {
		return Job{}, NewConversionError(ErrMissingFormat, "no output format selected")
	}
	if s.Converting() {
		return Job{}, NewConversionError(ErrBusy, "a conversion is already running")
	}

	job := NewJob(s.InputPath, s.Format)
	s.currentJob = job.ID
	s.State = StateConverting
	s.LastError = nil
	return job, nil
}

// Apply folds a worker result into the session. Results for jobs other than
// the current one are ignored.
func (s *Session) Apply(r Result) bool {
	if !s.Converting() || r.JobID != s.currentJob {
		return false
	}
	s.currentJob = ""
	if r.OK() {
		s.OutputPath = r.OutputPath
		s.State = StateConverted
		return true
	}
	s.LastError = r.Err
	s.State = StateFailed
	return true
}

// CanConvert reports whether the convert action is enabled
func (s *Session) CanConvert() bool {
	return !s.Converting()
}

// CanDownload reports whether the download action is enabled
func (s *Session) CanDownload() bool {
	return s.State == StateConverted && s.OutputPath != ""
}
