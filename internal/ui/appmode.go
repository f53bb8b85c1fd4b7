package ui

// AppMode is the top-level application mode: the sample browser or one
// sample's detail view.
type AppMode int

const (
	ModeBrowser AppMode = iota
	ModeDetail
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowser:
		return "Browser"
	case ModeDetail:
		return "Detail"
	default:
		return "Unknown"
	}
}
