package core

import "testing"

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    Direction
		ok     bool
	}{
		{ActionUp, DirUp, true},
		{ActionDown, DirDown, true},
		{ActionLeft, DirLeft, true},
		{ActionRight, DirRight, true},
		{ActionPause, DirRight, false},
		{ActionNone, DirRight, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dir, ok := tc.action.Direction()
			if ok != tc.ok {
				t.Fatalf("Direction() ok = %v, expected %v", ok, tc.ok)
			}
			if ok && dir != tc.dir {
				t.Errorf("Direction() = %v, expected %v", dir, tc.dir)
			}
		})
	}
}
