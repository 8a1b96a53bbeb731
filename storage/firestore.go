package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/talenthub/backend/config"
	"github.com/talenthub/backend/models"
)

const (
	usersCollection      = "users"
	candidatesCollection = "candidates"
	recruitersCollection = "recruiters"
)

// ErrNotFound is returned when a requested document does not exist
var ErrNotFound = errors.New("document not found")

// FirestoreClient wraps Firestore operations
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// CreateUser creates a new user. Emails must be unique.
func (f *FirestoreClient) CreateUser(ctx context.Context, user *models.User) error {
	existing, err := f.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to check user existence: %w", err)
	}
	if existing != nil {
		return errors.New("user with this email already exists")
	}

	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	_, err = f.client.Collection(usersCollection).Doc(user.ID).Set(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by email
func (f *FirestoreClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	iter := f.client.Collection(usersCollection).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// GetUserByID retrieves a user by document ID
func (f *FirestoreClient) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	doc, err := f.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// CreateCandidate creates a candidate profile document
func (f *FirestoreClient) CreateCandidate(ctx context.Context, profile *models.CandidateProfile) error {
	profile.ID = uuid.New().String()

	_, err := f.client.Collection(candidatesCollection).Doc(profile.ID).Set(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to create candidate profile: %w", err)
	}

	return nil
}

// GetCandidateByID retrieves a candidate profile by document ID
func (f *FirestoreClient) GetCandidateByID(ctx context.Context, id string) (*models.CandidateProfile, error) {
	doc, err := f.client.Collection(candidatesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get candidate profile: %w", err)
	}

	return candidateFromDoc(doc)
}

// GetCandidateByUserID retrieves the candidate profile owned by a user
func (f *FirestoreClient) GetCandidateByUserID(ctx context.Context, userID string) (*models.CandidateProfile, error) {
	iter := f.client.Collection(candidatesCollection).Where("userId", "==", userID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate profile: %w", err)
	}

	return candidateFromDoc(doc)
}

// UpdateCandidate overwrites a candidate profile document
func (f *FirestoreClient) UpdateCandidate(ctx context.Context, profile *models.CandidateProfile) error {
	if profile.ID == "" {
		return errors.New("candidate profile has no ID")
	}

	_, err := f.client.Collection(candidatesCollection).Doc(profile.ID).Set(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to update candidate profile: %w", err)
	}

	return nil
}

// IncrementCandidateViews bumps the profile view counter without
// rewriting the document
func (f *FirestoreClient) IncrementCandidateViews(ctx context.Context, id string) error {
	_, err := f.client.Collection(candidatesCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "profileViews", Value: firestore.Increment(1)},
	})
	if err != nil {
		return fmt.Errorf("failed to increment profile views: %w", err)
	}
	return nil
}

// ListOpenToWork retrieves all candidates open to work. Filtering
// beyond the open-to-work flag happens in process.
func (f *FirestoreClient) ListOpenToWork(ctx context.Context) ([]*models.CandidateProfile, error) {
	iter := f.client.Collection(candidatesCollection).Where("isOpenToWork", "==", true).Documents(ctx)
	return f.collectCandidates(iter)
}

// ListCandidates retrieves every candidate profile
func (f *FirestoreClient) ListCandidates(ctx context.Context) ([]*models.CandidateProfile, error) {
	iter := f.client.Collection(candidatesCollection).Documents(ctx)
	return f.collectCandidates(iter)
}

func (f *FirestoreClient) collectCandidates(iter *firestore.DocumentIterator) ([]*models.CandidateProfile, error) {
	defer iter.Stop()

	candidates := []*models.CandidateProfile{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate candidates: %w", err)
		}

		candidate, err := candidateFromDoc(doc)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

func candidateFromDoc(doc *firestore.DocumentSnapshot) (*models.CandidateProfile, error) {
	var candidate models.CandidateProfile
	if err := doc.DataTo(&candidate); err != nil {
		return nil, fmt.Errorf("failed to parse candidate data: %w", err)
	}
	candidate.ID = doc.Ref.ID
	return &candidate, nil
}

// CreateRecruiter creates a recruiter profile document
func (f *FirestoreClient) CreateRecruiter(ctx context.Context, profile *models.RecruiterProfile) error {
	profile.ID = uuid.New().String()

	_, err := f.client.Collection(recruitersCollection).Doc(profile.ID).Set(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to create recruiter profile: %w", err)
	}

	return nil
}

// GetRecruiterByUserID retrieves the recruiter profile owned by a user
func (f *FirestoreClient) GetRecruiterByUserID(ctx context.Context, userID string) (*models.RecruiterProfile, error) {
	iter := f.client.Collection(recruitersCollection).Where("userId", "==", userID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query recruiter profile: %w", err)
	}

	var recruiter models.RecruiterProfile
	if err := doc.DataTo(&recruiter); err != nil {
		return nil, fmt.Errorf("failed to parse recruiter data: %w", err)
	}

	recruiter.ID = doc.Ref.ID
	return &recruiter, nil
}

// UpdateRecruiter overwrites a recruiter profile document
func (f *FirestoreClient) UpdateRecruiter(ctx context.Context, profile *models.RecruiterProfile) error {
	if profile.ID == "" {
		return errors.New("recruiter profile has no ID")
	}

	_, err := f.client.Collection(recruitersCollection).Doc(profile.ID).Set(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to update recruiter profile: %w", err)
	}

	return nil
}
