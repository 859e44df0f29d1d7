package firestore

import (
	"errors"
	"strings"
	"testing"
)

func TestPartialFailureError(t *testing.T) {
	err := &PartialFailureError{
		Op:        "RmTeams",
		Succeeded: []string{"a", "b", "c"},
		Failed: []FailedWrite{
			{Key: "d", Err: errors.New("deadline exceeded")},
			{Key: "e", Err: errors.New("unavailable")},
		},
	}

	msg := err.Error()
	if !strings.Contains(msg, "2 of 5 writes failed") {
		t.Errorf("expected failure count in %q", msg)
	}
	if !strings.Contains(msg, "d: deadline exceeded") {
		t.Errorf("expected failed write detail in %q", msg)
	}
}
