package pipeline

import "testing"

func TestIsAllowedTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from State
		to   State
		want bool
	}{
		{name: "idle to reading", from: StateIdle, to: StateReading, want: true},
		{name: "reading to computing", from: StateReading, to: StateComputing, want: true},
		{name: "computing to reporting", from: StateComputing, to: StateReporting, want: true},
		{name: "reporting to terminated", from: StateReporting, to: StateTerminated, want: true},
		{name: "idle to terminated", from: StateIdle, to: StateTerminated, want: true},
		{name: "reading to terminated", from: StateReading, to: StateTerminated, want: true},
		{name: "idle skips reading", from: StateIdle, to: StateComputing, want: false},
		{name: "reporting back to reading", from: StateReporting, to: StateReading, want: false},
		{name: "terminated is final", from: StateTerminated, to: StateTerminated, want: false},
		{name: "terminated cannot restart", from: StateTerminated, to: StateIdle, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isAllowedTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("isAllowedTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	for _, s := range []State{StateIdle, StateReading, StateComputing, StateReporting} {
		if IsTerminal(s) {
			t.Errorf("expected %s to be non-terminal", s)
		}
	}
	if !IsTerminal(StateTerminated) {
		t.Error("expected TERMINATED to be terminal")
	}
}
