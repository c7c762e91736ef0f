package tui

// Message types for Bubble Tea update loop.

// timerFiredMsg delivers a scheduler callback back onto the update loop.
// The id identifies which queued callback to run; a callback whose id is no
// longer waiting is simply dropped.
type timerFiredMsg struct{ id int }
