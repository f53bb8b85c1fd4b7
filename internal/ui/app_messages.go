package ui

import (
	"sampleview/internal/layout"
	"sampleview/internal/samples"
)

// SamplesLoadedMsg is sent when a rescan of the results folder completes.
type SamplesLoadedMsg struct {
	Entries []SampleEntry
	Err     error
}

// SampleResolvedMsg carries one sample's freshly resolved render tree.
type SampleResolvedMsg struct {
	Sample   samples.Sample
	Resolved []*layout.Resolved
	Failures []error
}

// OpenSampleMsg is sent when the user selects a sample in the browser.
type OpenSampleMsg struct {
	Entry SampleEntry
}

// RescanMsg requests a fresh sample listing.
type RescanMsg struct{}

// ToggleStrictMsg flips strict resolution mode and re-resolves.
type ToggleStrictMsg struct{}

// OpenShellMsg opens the PTY overlay in the selected sample folder.
type OpenShellMsg struct{}
