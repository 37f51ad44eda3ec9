package gemini

// Observer receives progress and log events while a scan runs. Events are
// advisory: the scan's return value never depends on them, and a nil
// Observer is valid.
type Observer interface {
	// Progress reports completion as a percentage. Values are
	// monotonically non-decreasing over a single scan.
	Progress(pct int)
	// Log reports a human-readable status line.
	Log(line string)
}

// nopObserver discards all events.
type nopObserver struct{}

func (nopObserver) Progress(int) {}
func (nopObserver) Log(string)   {}

// orNop returns obs, or a no-op observer when obs is nil.
func orNop(obs Observer) Observer {
	if obs == nil {
		return nopObserver{}
	}
	return obs
}

// FuncObserver adapts plain callbacks into an Observer. Either field may be
// nil.
type FuncObserver struct {
	OnProgress func(pct int)
	OnLog      func(line string)
}

func (f FuncObserver) Progress(pct int) {
	if f.OnProgress != nil {
		f.OnProgress(pct)
	}
}

func (f FuncObserver) Log(line string) {
	if f.OnLog != nil {
		f.OnLog(line)
	}
}
