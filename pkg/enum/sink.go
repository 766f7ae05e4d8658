package enum

// Sink receives ordered enumeration events. Implementations render them
// as a terminal report or a machine-readable stream.
type Sink interface {
	// Section announces a new report heading.
	Section(title string)
	// Probe reports the classified outcome of one probe.
	Probe(res Result)
	// Details carries the indented summary lines of an accessible probe.
	Details(lines []string)
	// Info and Warn carry run-level notes.
	Info(text string)
	Warn(text string)
	// Fatal reports the error that ended the run early. A run that
	// emits Fatal never emits Complete.
	Fatal(err error)
	// Complete closes the run with the final tallies.
	Complete(stats Stats)
}

// Stats tallies probe outcomes over a run.
type Stats struct {
	Accessible   int `json:"accessible"`
	Forbidden    int `json:"forbidden"`
	Unauthorized int `json:"unauthorized"`
	NotFound     int `json:"not_found"`
	Other        int `json:"other"`
	Errors       int `json:"errors"`
}

// Total returns the number of executed probes.
func (s Stats) Total() int {
	return s.Accessible + s.Forbidden + s.Unauthorized + s.NotFound + s.Other + s.Errors
}

func (s *Stats) observe(c Classification) {
	switch c {
	case ClassAccessible:
		s.Accessible++
	case ClassForbidden:
		s.Forbidden++
	case ClassUnauthorized:
		s.Unauthorized++
	case ClassNotFound:
		s.NotFound++
	case ClassOtherStatus:
		s.Other++
	case ClassTransportError:
		s.Errors++
	}
}

// discardSink drops every event. Used when no sink is configured.
type discardSink struct{}

func (discardSink) Section(string)   {}
func (discardSink) Probe(Result)     {}
func (discardSink) Details([]string) {}
func (discardSink) Info(string)      {}
func (discardSink) Warn(string)      {}
func (discardSink) Fatal(error)      {}
func (discardSink) Complete(Stats)   {}
