package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const AGREEMENTS_COLLECTION = "agreements"

// AGREEMENT_DOC is the fixed ID of the singleton terms document.
const AGREEMENT_DOC = "content"

// Agreement is the singleton terms document shown to applicants before the
// registration form. The sections are long markdown strings.
type Agreement struct {
	Check         string `firestore:"check"`
	Conditions    string `firestore:"conditions"`
	CodeOfConduct string `firestore:"coc"`
	Privacy       string `firestore:"privacy"`
}

// GetAgreement gets the terms singleton. A missing document is not an error:
// the sections simply read back empty, same as the public site treats it.
func GetAgreement(ctx context.Context, client *firestore.Client) (Agreement, error) {
	var a Agreement
	snap, err := client.Collection(AGREEMENTS_COLLECTION).Doc(AGREEMENT_DOC).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return a, nil
	}
	if err != nil {
		return a, err
	}
	if err = snap.DataTo(&a); err != nil {
		return a, err
	}
	return a, nil
}

// MergeAgreement merges the given sections onto the terms singleton, creating
// it if absent. Sections not present in the map are left untouched.
func MergeAgreement(ctx context.Context, client *firestore.Client, sections map[string]interface{}) error {
	if len(sections) == 0 {
		return ValidationError{Field: "sections", Message: "at least one section to set must be specified"}
	}
	ref := client.Collection(AGREEMENTS_COLLECTION).Doc(AGREEMENT_DOC)
	_, err := ref.Set(ctx, sections, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("error merging agreement: %w", err)
	}
	return nil
}
