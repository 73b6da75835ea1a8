package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/shinyyama/omnicopy-backend/internal/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection        = "users"
	descriptionsCollection = "productDescriptions"
)

// historyDoc is the Firestore shape: generated fields sit at the top level of the document.
type historyDoc struct {
	UserID           string             `firestore:"userId"`
	Title            string             `firestore:"title"`
	Description      string             `firestore:"description"`
	ShortDescription string             `firestore:"shortDescription"`
	MetaDescription  string             `firestore:"metaDescription"`
	Tags             []string           `firestore:"tags"`
	Handle           string             `firestore:"handle,omitempty"`
	Vendor           string             `firestore:"vendor,omitempty"`
	SEOTitle         string             `firestore:"seoTitle,omitempty"`
	Option1Name      string             `firestore:"option1Name,omitempty"`
	Option1Value     string             `firestore:"option1Value,omitempty"`
	Platform         string             `firestore:"platform"`
	CreatedAt        time.Time          `firestore:"createdAt,serverTimestamp"`
	InputData        model.ProductInput `firestore:"inputData"`
}

func toHistoryDoc(rec *model.ProductDescription) historyDoc {
	c := rec.Content
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return historyDoc{
		UserID:           rec.UserID,
		Title:            c.Title,
		Description:      c.Description,
		ShortDescription: c.ShortDescription,
		MetaDescription:  c.MetaDescription,
		Tags:             tags,
		Handle:           c.Handle,
		Vendor:           c.Vendor,
		SEOTitle:         c.SEOTitle,
		Option1Name:      c.Option1Name,
		Option1Value:     c.Option1Value,
		Platform:         string(rec.Platform),
		InputData:        rec.InputData,
	}
}

func (d historyDoc) record(id string) model.ProductDescription {
	return model.ProductDescription{
		ID:       id,
		UserID:   d.UserID,
		Platform: model.Platform(d.Platform),
		Content: model.GeneratedContent{
			Title:            d.Title,
			Description:      d.Description,
			ShortDescription: d.ShortDescription,
			MetaDescription:  d.MetaDescription,
			Tags:             d.Tags,
			Handle:           d.Handle,
			Vendor:           d.Vendor,
			SEOTitle:         d.SEOTitle,
			Option1Name:      d.Option1Name,
			Option1Value:     d.Option1Value,
		},
		CreatedAt: d.CreatedAt,
		InputData: d.InputData,
	}
}

type firestoreHistoryRepository struct {
	client *firestore.Client
}

// NewFirestoreHistoryRepository stores records under users/{uid}/productDescriptions.
func NewFirestoreHistoryRepository(client *firestore.Client) HistoryRepository {
	return &firestoreHistoryRepository{client: client}
}

func (r *firestoreHistoryRepository) collection(uid string) *firestore.CollectionRef {
	return r.client.Collection(usersCollection).Doc(uid).Collection(descriptionsCollection)
}

func (r *firestoreHistoryRepository) Create(ctx context.Context, rec *model.ProductDescription) error {
	if r.client == nil {
		return ErrDBNotReady
	}
	ref := r.collection(rec.UserID).NewDoc()
	wr, err := ref.Create(ctx, toHistoryDoc(rec))
	if err != nil {
		return fmt.Errorf("firestore create %s: %w", ref.Path, err)
	}
	rec.ID = ref.ID
	rec.CreatedAt = wr.UpdateTime
	return nil
}

func (r *firestoreHistoryRepository) ListRecent(ctx context.Context, uid string, limit int) ([]model.ProductDescription, error) {
	if r.client == nil {
		return nil, ErrDBNotReady
	}
	snaps, err := r.collection(uid).
		OrderBy("createdAt", firestore.Desc).
		Limit(clampLimit(limit)).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("firestore list: %w", err)
	}
	recs := make([]model.ProductDescription, 0, len(snaps))
	for _, snap := range snaps {
		var d historyDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, fmt.Errorf("firestore decode %s: %w", snap.Ref.ID, err)
		}
		recs = append(recs, d.record(snap.Ref.ID))
	}
	return recs, nil
}

func (r *firestoreHistoryRepository) FindByID(ctx context.Context, uid, id string) (*model.ProductDescription, error) {
	if r.client == nil {
		return nil, ErrDBNotReady
	}
	snap, err := r.collection(uid).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("firestore get: %w", err)
	}
	var d historyDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, fmt.Errorf("firestore decode %s: %w", id, err)
	}
	rec := d.record(snap.Ref.ID)
	return &rec, nil
}

type firestoreProfileRepository struct {
	client *firestore.Client
}

// NewFirestoreProfileRepository stores profiles at users/{uid}.
func NewFirestoreProfileRepository(client *firestore.Client) ProfileRepository {
	return &firestoreProfileRepository{client: client}
}

func (r *firestoreProfileRepository) Ensure(ctx context.Context, p *model.UserProfile) (*model.UserProfile, error) {
	if r.client == nil {
		return nil, ErrDBNotReady
	}
	ref := r.client.Collection(usersCollection).Doc(p.UID)
	snap, err := ref.Get(ctx)
	if err == nil {
		return decodeProfile(snap)
	}
	if status.Code(err) != codes.NotFound {
		return nil, fmt.Errorf("firestore get profile: %w", err)
	}

	created := *p
	created.CreditBalance = model.InitialCreditBalance
	created.CreatedAt = time.Time{}
	wr, err := ref.Create(ctx, created)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			snap, err := ref.Get(ctx)
			if err != nil {
				return nil, fmt.Errorf("firestore get profile: %w", err)
			}
			return decodeProfile(snap)
		}
		return nil, fmt.Errorf("firestore create profile: %w", err)
	}
	created.CreatedAt = wr.UpdateTime
	return &created, nil
}

func decodeProfile(snap *firestore.DocumentSnapshot) (*model.UserProfile, error) {
	var out model.UserProfile
	if err := snap.DataTo(&out); err != nil {
		return nil, fmt.Errorf("firestore decode profile: %w", err)
	}
	if out.UID == "" {
		out.UID = snap.Ref.ID
	}
	return &out, nil
}
