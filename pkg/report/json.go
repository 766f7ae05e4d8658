package report

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/l0lsec/datadogenumerator/pkg/enum"
)

// JSONSink emits one event object per line for machine consumption.
type JSONSink struct {
	enc *json.Encoder
}

// NewJSONSink initializes a JSON sink writing to out.
func NewJSONSink(out io.Writer) *JSONSink {
	return &JSONSink{enc: json.NewEncoder(out)}
}

type jsonEvent struct {
	Event          string      `json:"event"`
	Section        string      `json:"section,omitempty"`
	Probe          string      `json:"probe,omitempty"`
	Path           string      `json:"path,omitempty"`
	Classification string      `json:"classification,omitempty"`
	StatusCode     int         `json:"status_code,omitempty"`
	Error          string      `json:"error,omitempty"`
	Text           string      `json:"text,omitempty"`
	Lines          []string    `json:"lines,omitempty"`
	Stats          *enum.Stats `json:"stats,omitempty"`
}

func (j *JSONSink) emit(ev jsonEvent) {
	// Encode failures on an in-memory event mean a broken writer; there
	// is nowhere better to report them.
	_ = j.enc.Encode(ev)
}

// Section emits a section event.
func (j *JSONSink) Section(title string) {
	j.emit(jsonEvent{Event: "section", Section: title})
}

// Probe emits one classified probe event.
func (j *JSONSink) Probe(res enum.Result) {
	ev := jsonEvent{
		Event:          "probe",
		Probe:          res.Spec.ID,
		Path:           res.Spec.Path,
		Classification: res.Class.String(),
		StatusCode:     res.StatusCode,
	}
	if res.Err != nil {
		ev.Error = res.Err.Error()
	}
	j.emit(ev)
}

// Details emits the summary lines of an accessible probe.
func (j *JSONSink) Details(lines []string) {
	trimmed := make([]string, len(lines))
	for i, l := range lines {
		trimmed[i] = strings.TrimSpace(l)
	}
	j.emit(jsonEvent{Event: "details", Lines: trimmed})
}

// Info emits a run-level note.
func (j *JSONSink) Info(text string) {
	j.emit(jsonEvent{Event: "info", Text: text})
}

// Warn emits a run-level warning.
func (j *JSONSink) Warn(text string) {
	j.emit(jsonEvent{Event: "warning", Text: text})
}

// Fatal emits the error that ended the run early, keeping stdout pure
// JSON even when the run fails.
func (j *JSONSink) Fatal(err error) {
	j.emit(jsonEvent{Event: "error", Error: err.Error()})
}

// Complete emits the closing event with final tallies.
func (j *JSONSink) Complete(stats enum.Stats) {
	j.emit(jsonEvent{Event: "complete", Stats: &stats})
}
