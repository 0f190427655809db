package output

// Level identifies the kind of a recorded message.
type Level int

const (
	LevelVerbose Level = iota
	LevelInfo
	LevelSuccess
	LevelWarn
	LevelError
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelVerbose:
		return "VERBOSE"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Message is a single recorded message.
type Message struct {
	Level Level
	Text  string
}

// Recorder is a Sink that keeps every message in memory.
// Verbose messages are recorded regardless of verbose mode.
type Recorder struct {
	Messages []Message
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(level Level, msg string) {
	r.Messages = append(r.Messages, Message{Level: level, Text: msg})
}

func (r *Recorder) Success(msg string) { r.record(LevelSuccess, msg) }
func (r *Recorder) Error(msg string) { r.record(LevelError, msg) }
func (r *Recorder) Warn(msg string) { r.record(LevelWarn, msg) }
func (r *Recorder) Info(msg string) { r.record(LevelInfo, msg) }
func (r *Recorder) Verbose(msg string) { r.record(LevelVerbose, msg) }

// Texts returns the text of every message recorded at the given level, in order.
func (r *Recorder) Texts(level Level) []string {
	var out []string
	for _, m := range r.Messages {
		if m.Level == level {
			out = append(out, m.Text)
		}
	}
	return out
}

// Errors is shorthand for Texts(LevelError).
func (r *Recorder) Errors() []string {
	return r.Texts(LevelError)
}

// Reset discards all recorded messages.
func (r *Recorder) Reset() {
	r.Messages = nil
}
