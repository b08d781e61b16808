package tui

type state int

const (
	scheduleState state = iota
	captionsState
)
