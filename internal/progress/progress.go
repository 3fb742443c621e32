package progress

// Stage identifies a pipeline step in emitted events.
type Stage string

const (
	StageDownload  Stage = "download"
	StageUpload    Stage = "upload"
	StageProcess   Stage = "processing"
	StageExtract   Stage = "extract"
	StageSummarize Stage = "summarize"
)

// Event is a single progress observation. Fraction is in [0, 1] and is
// monotonically non-decreasing within a stage; 0 means unknown.
type Event struct {
	Stage    Stage
	Fraction float64
	Message  string
}

// Reporter receives progress events from the pipeline. Implementations are
// presentation concerns (CLI bars, logs) and must not block for long.
type Reporter interface {
	Publish(Event)
}

// Func adapts a function to the Reporter interface.
type Func func(Event)

func (f Func) Publish(e Event) { f(e) }

// Nop returns a Reporter that discards all events.
func Nop() Reporter {
	return Func(func(Event) {})
}
