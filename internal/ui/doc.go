// Package ui hosts scrolling text panels in a Bubble Tea program.
//
// Core abstractions:
//   - View: a panel's own Init/Update/View (Elm-style)
//   - Panel: a View plus its bounds within a layout
//   - Layout: arranges panels and defines focus order
//   - FocusManager: tracks and rotates focus across panels
//   - KeybindRegistry: maps keys to commands and feeds the help footer
//
// ScrollPanel composes a linebuf.Buffer and redraws it inside a titled
// frame. Producers outside the event loop never touch a buffer directly;
// they send AppendLineMsg / ReplaceLastLineMsg through the program.
package ui
