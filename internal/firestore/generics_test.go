package firestore

import (
	"errors"
	"testing"

	fs "cloud.google.com/go/firestore"
)

func TestHydrateAllMissingDocument(t *testing.T) {
	snaps := []*fs.DocumentSnapshot{{Ref: &fs.DocumentRef{ID: "ghost"}}}

	_, err := hydrateAll[Applicant](snaps)
	var anf ApplicantNotFound
	if !errors.As(err, &anf) {
		t.Errorf("expected ApplicantNotFound, got %v", err)
	}

	_, err = hydrateAll[Team](snaps)
	var tnf TeamNotFound
	if !errors.As(err, &tnf) {
		t.Errorf("expected TeamNotFound, got %v", err)
	}

	_, err = hydrateAll[Match](snaps)
	var mnf MatchNotFound
	if !errors.As(err, &mnf) {
		t.Errorf("expected MatchNotFound, got %v", err)
	}
}
