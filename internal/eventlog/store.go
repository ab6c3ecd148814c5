package eventlog

import "time"

// Status classifies the outcome of one generation run.
type Status int

const (
	StatusCreated Status = iota
	StatusMissingSource
	StatusFailed
)

// String returns the name used in history output.
func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusMissingSource:
		return "missing_source"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Record is one generation run.
type Record struct {
	Time   time.Time
	Source string
	Output string
	Size   int
	Width  int // scaled content width, 0 unless created
	Height int // scaled content height, 0 unless created
	X, Y   int // content offset on the canvas
	Status Status
	Error  string
}

// Store abstracts generation history storage.
type Store interface {
	Log(r Record) error
	Recent(n int) ([]Record, error) // newest first, n <= 0 = all
	Path() string
	Close() error
}
