package model

import "testing"

func TestSessionState_IsActive(t *testing.T) {
	tests := []struct {
		state    SessionState
		expected bool
	}{
		{StateIdle, false},
		{StateFileChosen, false},
		{StateConverting, true},
		{StateConverted, false},
		{StateFailed, false},
	}

	for _, test := range tests {
		result := test.state.IsActive()
		if result != test.expected {
			t.Errorf("SessionState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestSessionState_IsFinished(t *testing.T) {
	tests := []struct {
		state    SessionState
		expected bool
	}{
		{StateIdle, false},
		{StateFileChosen, false},
		{StateConverting, false},
		{StateConverted, true},
		{StateFailed, true},
	}

	for _, test := range tests {
		result := test.state.IsFinished()
		if result != test.expected {
			t.Errorf("SessionState(%s).IsFinished() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestSessionState_String(t *testing.T) {
	if got := StateFileChosen.String(); got != "file-chosen" {
		t.Errorf("SessionState.String() = %s, expected file-chosen", got)
	}
}
