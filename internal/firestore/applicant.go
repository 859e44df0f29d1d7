package firestore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const APPLICATIONS_COLLECTION = "applications"

// StatusPending is the status stamped on every new application. The field is
// otherwise opaque: nothing in the tool transitions it, and imported rows may
// carry whatever status the source spreadsheet recorded.
const StatusPending = "pending"

// MinGrade and MaxGrade bound the administrator-assigned grade. Zero means ungraded.
const (
	MinGrade = 1
	MaxGrade = 5
)

// Applicant represents one submitted registration form in the datastore.
type Applicant struct {
	// Name is the applicant's full name as typed into the form.
	Name string `firestore:"applicantName"`

	// Contact is a free-form contact string (phone, Discord handle, whatever the applicant gave).
	Contact string `firestore:"contact"`

	// Class is the applicant's cohort label.
	Class string `firestore:"class"`

	// RiotID is the applicant's in-game handle, typically in GameName#TAG format.
	RiotID string `firestore:"riotId"`

	// CurrentTier and PeakTier are self-reported rank strings. They are not
	// validated against any rank list and feed only the statistics pages.
	CurrentTier string `firestore:"currentTier"`
	PeakTier    string `firestore:"peakTier"`

	// Status is a passthrough workflow marker, "pending" on submission.
	Status string `firestore:"status"`

	// Grade is the administrator-assigned tier in [MinGrade, MaxGrade].
	// Zero means no grade has been assigned yet.
	Grade int `firestore:"grade,omitempty"`

	// Team is the name of the team the applicant has been assigned to.
	// Empty means unassigned. Grading precedes assignment in the workflow.
	Team string `firestore:"team,omitempty"`

	// Created is stamped by the server once at submission and never touched again.
	Created time.Time `firestore:"createdAt,serverTimestamp"`
}

func (a Applicant) String() string {
	var sb strings.Builder
	sb.WriteString("Applicant\n")
	ss := make([]string, 0)
	ss = append(ss, treeString("Name", 0, false, a.Name))
	ss = append(ss, treeString("Contact", 0, false, a.Contact))
	ss = append(ss, treeString("Class", 0, false, a.Class))
	ss = append(ss, treeString("RiotID", 0, false, a.RiotID))
	ss = append(ss, treeString("CurrentTier", 0, false, a.CurrentTier))
	ss = append(ss, treeString("PeakTier", 0, false, a.PeakTier))
	ss = append(ss, treeString("Status", 0, false, a.Status))
	ss = append(ss, treeInt("Grade", 0, false, a.Grade))
	ss = append(ss, treeString("Team", 0, true, a.Team))
	sb.WriteString(strings.Join(ss, "\n"))
	return sb.String()
}

// UnmarshalText implements the TextUnmarshaler interface so applicants can be
// given on the command line in Name:Contact:Class:RiotID:CurrentTier:PeakTier format.
// Riot IDs use #, not :, so the colon is a safe separator.
func (a *Applicant) UnmarshalText(text []byte) error {
	splits := strings.Split(string(text), ":")
	if len(splits) != 6 {
		return fmt.Errorf("wrong number of fields for applicant: expected 6, got %d", len(splits))
	}
	a.Name = splits[0]
	a.Contact = splits[1]
	a.Class = splits[2]
	a.RiotID = splits[3]
	a.CurrentTier = splits[4]
	a.PeakTier = splits[5]
	return nil
}

// Validate checks that every field the registration form requires is present.
func (a Applicant) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"applicantName", a.Name},
		{"contact", a.Contact},
		{"class", a.Class},
		{"riotId", a.RiotID},
		{"currentTier", a.CurrentTier},
		{"peakTier", a.PeakTier},
	}
	for _, r := range required {
		if r.value == "" {
			return ValidationError{Field: r.field, Message: "required field is missing"}
		}
	}
	return nil
}

// ValidGrade reports whether g is an assignable grade.
func ValidGrade(g int) bool {
	return g >= MinGrade && g <= MaxGrade
}

// GetApplicants gets all applications in the datastore, newest first.
// An empty collection is not an error.
func GetApplicants(ctx context.Context, client *firestore.Client) ([]Applicant, []*firestore.DocumentRef, error) {
	iter := client.Collection(APPLICATIONS_COLLECTION).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	applicants := make([]Applicant, 0)
	refs := make([]*firestore.DocumentRef, 0)
	for {
		ss, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error getting applicant snapshot: %w", err)
		}
		var a Applicant
		err = ss.DataTo(&a)
		if err != nil {
			return nil, nil, fmt.Errorf("error getting applicant snapshot data: %w", err)
		}
		applicants = append(applicants, a)
		refs = append(refs, ss.Ref)
	}
	return applicants, refs, nil
}

// GetApplicant gets the application with the given document ID.
func GetApplicant(ctx context.Context, client *firestore.Client, id string) (Applicant, *firestore.DocumentRef, error) {
	var a Applicant
	snap, err := client.Collection(APPLICATIONS_COLLECTION).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return a, nil, ApplicantNotFound(fmt.Sprintf("no application with ID \"%s\" defined", id))
	}
	if err != nil {
		return a, nil, err
	}
	if err = snap.DataTo(&a); err != nil {
		return a, nil, err
	}
	return a, snap.Ref, nil
}

// AddApplicant validates the applicant, stamps the pending status, and creates
// a new application document with a generated ID. The creation timestamp is
// assigned by the server at commit.
func AddApplicant(ctx context.Context, client *firestore.Client, a Applicant) (*firestore.DocumentRef, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	ref := client.Collection(APPLICATIONS_COLLECTION).NewDoc()
	_, err := ref.Create(ctx, &a)
	if err != nil {
		return nil, fmt.Errorf("error creating application: %w", err)
	}
	return ref, nil
}

// SetApplicantGrade merges the grade onto the application without disturbing other fields.
func SetApplicantGrade(ctx context.Context, client *firestore.Client, id string, grade int) error {
	if !ValidGrade(grade) {
		return ValidationError{Field: "grade", Message: fmt.Sprintf("grade must be an integer in [%d, %d], got %d", MinGrade, MaxGrade, grade)}
	}
	ref := client.Collection(APPLICATIONS_COLLECTION).Doc(id)
	_, err := ref.Update(ctx, []firestore.Update{{Path: "grade", Value: grade}})
	if status.Code(err) == codes.NotFound {
		return ApplicantNotFound(fmt.Sprintf("no application with ID \"%s\" defined", id))
	}
	return err
}

// SetApplicantTeam merges the team name onto the application.
func SetApplicantTeam(ctx context.Context, client *firestore.Client, id string, team string) error {
	ref := client.Collection(APPLICATIONS_COLLECTION).Doc(id)
	_, err := ref.Update(ctx, []firestore.Update{{Path: "team", Value: team}})
	if status.Code(err) == codes.NotFound {
		return ApplicantNotFound(fmt.Sprintf("no application with ID \"%s\" defined", id))
	}
	return err
}

// ClearApplicantTeam removes the team field from the application, returning the
// applicant to the unassigned pool.
func ClearApplicantTeam(ctx context.Context, client *firestore.Client, id string) error {
	ref := client.Collection(APPLICATIONS_COLLECTION).Doc(id)
	_, err := ref.Update(ctx, []firestore.Update{{Path: "team", Value: firestore.Delete}})
	if status.Code(err) == codes.NotFound {
		return ApplicantNotFound(fmt.Sprintf("no application with ID \"%s\" defined", id))
	}
	return err
}

// DeleteApplicant removes the application document. Team membership is not
// cascaded: rosters keep their denormalized member snapshots.
func DeleteApplicant(ctx context.Context, client *firestore.Client, id string) error {
	_, ref, err := GetApplicant(ctx, client, id)
	if err != nil {
		return err
	}
	_, err = ref.Delete(ctx)
	return err
}
