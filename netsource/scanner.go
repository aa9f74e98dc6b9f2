package netsource

import "context"

// Request identifies one scan started by Scanner.Begin.
type Request struct {
	ID uint64
}

// Result is the outcome of a scan, tagged with its request ID.
type Result struct {
	ID       uint64
	Networks []Network
	Err      error
}

// Scanner owns the loading flag and the current result list. Begin, Complete
// and the accessors must be called from a single goroutine (the UI loop); Run
// may be called from any goroutine.
type Scanner struct {
	src Source

	seq      uint64
	scanning bool
	results  []Network
}

// NewScanner returns a Scanner reading from src.
func NewScanner(src Source) *Scanner {
	return &Scanner{src: src}
}

// Begin starts a scan. While one is in flight it returns false and changes
// nothing. The previous results are discarded.
func (s *Scanner) Begin() (Request, bool) {
	if s.scanning {
		l().Debugw("scan already in flight", "id", s.seq)
		return Request{}, false
	}
	s.seq++
	s.scanning = true
	s.results = nil
	l().Debugw("scan started", "id", s.seq)
	return Request{ID: s.seq}, true
}

// Run queries the source for req. It blocks for the duration of the scan.
func (s *Scanner) Run(ctx context.Context, req Request) Result {
	nets, err := s.src.Scan(ctx)
	return Result{ID: req.ID, Networks: nets, Err: err}
}

// Complete applies res if it answers the most recent request and reports
// whether it did. Results of superseded requests are dropped.
func (s *Scanner) Complete(res Result) bool {
	if !s.scanning || res.ID != s.seq {
		l().Debugw("stale scan result dropped", "id", res.ID, "current", s.seq)
		return false
	}
	s.scanning = false
	if res.Err != nil {
		l().Warnw("scan failed", "id", res.ID, "error", res.Err)
		s.results = nil
		return true
	}
	s.results = append([]Network(nil), res.Networks...)
	l().Infow("scan completed", "id", res.ID, "count", len(s.results))
	return true
}

// Scanning reports whether a scan is in flight.
func (s *Scanner) Scanning() bool { return s.scanning }

// InFlight returns the request currently being scanned, if any.
func (s *Scanner) InFlight() (Request, bool) {
	if !s.scanning {
		return Request{}, false
	}
	return Request{ID: s.seq}, true
}

// Results returns a copy of the latest result set. It is empty while a scan
// is in flight.
func (s *Scanner) Results() []Network {
	return append([]Network(nil), s.results...)
}

// Lookup finds a network in the current results by SSID.
func (s *Scanner) Lookup(ssid string) (Network, bool) {
	for _, n := range s.results {
		if n.SSID == ssid {
			return n, true
		}
	}
	return Network{}, false
}
