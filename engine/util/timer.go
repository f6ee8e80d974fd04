package util

import (
	"fmt"
	"time"
)

type TimerState struct {
	name           string
	lastDuration   float64
	totalDuration  float64
	executionCount int64
}

func (t *TimerState) averageDuration() float64 {
	if t.executionCount == 0 {
		return 0
	}
	return t.totalDuration / float64(t.executionCount)
}

func (t *TimerState) String() string {
	return fmt.Sprintf("%s last: %.2fms, avg: %.2fms (%d runs)", t.name, t.lastDuration, t.averageDuration(), t.executionCount)
}

// Timer accumulates named wall-clock timings. Start returns a stop func that
// records the elapsed time and hands it back in milliseconds.
type Timer struct {
	states     map[string]*TimerState
	timerNames []string
}

func NewTimer() *Timer {
	return &Timer{
		states: make(map[string]*TimerState),
	}
}

func (t *Timer) GetState(name string) *TimerState {
	return t.states[name]
}

func (t *Timer) Reset() {
	for _, state := range t.states {
		state.lastDuration = 0
		state.totalDuration = 0
		state.executionCount = 0
	}
}

func (t *Timer) String() string {
	var str string
	for _, name := range t.timerNames {
		str += t.states[name].String() + "\n"
	}
	return str
}

func (t *Timer) Start(name string) func() float64 {
	state, ok := t.states[name]
	if !ok {
		t.timerNames = append(t.timerNames, name)
		state = &TimerState{name: name}
		t.states[name] = state
	}
	start := time.Now()
	return func() float64 {
		durationInMS := float64(time.Since(start).Microseconds()) / 1000.0
		state.lastDuration = durationInMS
		state.totalDuration += durationInMS
		state.executionCount++
		return durationInMS
	}
}
