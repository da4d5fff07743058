package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fyp-portal/directory-service/internal/core/domain"
	"github.com/fyp-portal/directory-service/internal/core/ports"
)

const collectionSupervisors = "supervisors"

// SupervisorRepository persists supervisor roster entries. Email uniqueness
// is enforced by a unique index, so a duplicate insert or update is rejected
// atomically by the server and the collection is left unchanged.
type SupervisorRepository struct {
	col *mongo.Collection
}

func NewSupervisorRepository(db *mongo.Database) *SupervisorRepository {
	return &SupervisorRepository{col: db.Collection(collectionSupervisors)}
}

type supervisorDoc struct {
	ID         string `bson:"_id"`
	Name       string `bson:"name"`
	Email      string `bson:"email"`
	Department string `bson:"department"`
}

func (d supervisorDoc) toDomain() *domain.Supervisor {
	return &domain.Supervisor{ID: d.ID, Name: d.Name, Email: d.Email, Department: d.Department}
}

// Create inserts a new roster entry.
func (r *SupervisorRepository) Create(ctx context.Context, s *domain.Supervisor) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := supervisorDoc{ID: s.ID, Name: s.Name, Email: s.Email, Department: s.Department}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert supervisor: %w", err)
	}
	return nil
}

// FindByID retrieves a roster entry by id.
func (r *SupervisorRepository) FindByID(ctx context.Context, id string) (*domain.Supervisor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d supervisorDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSupervisorNotFound
		}
		return nil, fmt.Errorf("find supervisor: %w", err)
	}
	return d.toDomain(), nil
}

// Update replaces the mutable fields of the stored entry identified by s.ID.
func (r *SupervisorRepository) Update(ctx context.Context, s *domain.Supervisor) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"name": s.Name, "email": s.Email, "department": s.Department}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": s.ID}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("update supervisor: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSupervisorNotFound
	}
	return nil
}

// Delete removes a roster entry by id.
func (r *SupervisorRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete supervisor: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSupervisorNotFound
	}
	return nil
}

// List returns a page of roster entries and the total count. Search is a
// case-insensitive substring match applied across name, email and
// department; the term is regex-quoted so user input is matched literally.
func (r *SupervisorRepository) List(ctx context.Context, filter ports.ListSupervisorsFilter) ([]*domain.Supervisor, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Search != "" {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": rx},
			bson.M{"email": rx},
			bson.M{"department": rx},
		}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count supervisors: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(filter.Page-1) * int64(filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list supervisors: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Supervisor
	for cur.Next(ctx) {
		var d supervisorDoc
		if err := cur.Decode(&d); err != nil {
			return nil, 0, fmt.Errorf("decode supervisor: %w", err)
		}
		out = append(out, d.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate supervisors: %w", err)
	}
	return out, total, nil
}

// Count returns the roster size.
func (r *SupervisorRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the unique email index. This is the atomic guard
// behind the "no two supervisors share an email" invariant, including under
// concurrent inserts.
func (r *SupervisorRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
