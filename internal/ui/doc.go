// Package ui is the terminal front end for the viewer, built on Bubble Tea.
//
// It consumes only the resolution engine's outputs: the ordered sample
// list with thumbnail paths, and one resolved render tree per selected
// sample. Core abstractions:
//   - View: a screen with its own model, update, view (Elm-style)
//   - BrowserView: the sample list
//   - DetailView: one sample's resolved render tree
//   - KeybindRegistry / KeyHandler: leader-key command dispatch
//   - ShellView: PTY overlay rooted in the selected sample folder
package ui
