package driver

import "time"

// Stage describes a phase of the conversion pipeline.
type Stage string

const (
	// StageLoad is reading and normalizing the input file.
	StageLoad Stage = "load"
	// StageTokenize is the raw token pass.
	StageTokenize Stage = "tokenize"
	// StageRewrite is the rule application pass.
	StageRewrite Stage = "rewrite"
	// StageApply is patch application and output writing.
	StageApply Stage = "apply"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being converted.
	StatusWorking Status = "working"
	// StatusDone indicates the file finished cleanly.
	StatusDone Status = "done"
	// StatusError indicates the conversion failed.
	StatusError Status = "error"
)

// Event reports progress for one file (or for the whole run when File
// is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
