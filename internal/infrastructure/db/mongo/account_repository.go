package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fyp-portal/directory-service/internal/core/domain"
	"github.com/fyp-portal/directory-service/internal/core/ports"
)

const collectionAccounts = "accounts"

const defaultTimeout = 10 * time.Second

// AccountRepository persists account records in the accounts collection.
// Username uniqueness is enforced by a unique index, so a duplicate insert
// or update is rejected atomically by the server.
type AccountRepository struct {
	col *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{col: db.Collection(collectionAccounts)}
}

type accountDoc struct {
	ID           string     `bson:"_id"`
	Username     string     `bson:"username"`
	PasswordHash string     `bson:"password_hash"`
	Email        string     `bson:"email,omitempty"`
	FirstName    string     `bson:"first_name,omitempty"`
	LastName     string     `bson:"last_name,omitempty"`
	IsActive     bool       `bson:"is_active"`
	IsStaff      bool       `bson:"is_staff"`
	IsSuperuser  bool       `bson:"is_superuser"`
	LastLogin    *time.Time `bson:"last_login,omitempty"`
	Role         string     `bson:"role"`
	CreatedAt    time.Time  `bson:"created_at"`
}

func toAccountDoc(a *domain.Account) accountDoc {
	return accountDoc{
		ID:           a.ID,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Email:        a.Email,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		IsActive:     a.IsActive,
		IsStaff:      a.IsStaff,
		IsSuperuser:  a.IsSuperuser,
		LastLogin:    a.LastLogin,
		Role:         string(a.Role),
		CreatedAt:    a.CreatedAt,
	}
}

func (d accountDoc) toDomain() *domain.Account {
	return &domain.Account{
		ID:        d.ID,
		Role:      domain.Role(d.Role),
		CreatedAt: d.CreatedAt.UTC(),
		Identity: domain.Identity{
			Username:     d.Username,
			PasswordHash: d.PasswordHash,
			Email:        d.Email,
			FirstName:    d.FirstName,
			LastName:     d.LastName,
			IsActive:     d.IsActive,
			IsStaff:      d.IsStaff,
			IsSuperuser:  d.IsSuperuser,
			LastLogin:    d.LastLogin,
		},
	}
}

// Create inserts a new account document.
func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toAccountDoc(a)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// FindByUsername retrieves an account by its unique username.
func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d accountDoc
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return d.toDomain(), nil
}

// Update replaces every mutable field of the stored record identified by
// a.ID. created_at is never part of the $set document; it is written once
// at insert and never again.
func (r *AccountRepository) Update(ctx context.Context, a *domain.Account) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"username":      a.Username,
		"password_hash": a.PasswordHash,
		"email":         a.Email,
		"first_name":    a.FirstName,
		"last_name":     a.LastName,
		"is_active":     a.IsActive,
		"is_staff":      a.IsStaff,
		"is_superuser":  a.IsSuperuser,
		"last_login":    a.LastLogin,
		"role":          string(a.Role),
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": a.ID}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// Delete removes an account by username.
func (r *AccountRepository) Delete(ctx context.Context, username string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// List returns a page of accounts matching filter and the total count.
func (r *AccountRepository) List(ctx context.Context, filter ports.ListAccountsFilter) ([]*domain.Account, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Role != "" {
		query["role"] = filter.Role
	}
	if filter.IsStaff != nil {
		query["is_staff"] = *filter.IsStaff
	}
	if filter.IsActive != nil {
		query["is_active"] = *filter.IsActive
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count accounts: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(filter.Page-1) * int64(filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list accounts: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Account
	for cur.Next(ctx) {
		var d accountDoc
		if err := cur.Decode(&d); err != nil {
			return nil, 0, fmt.Errorf("decode account: %w", err)
		}
		out = append(out, d.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate accounts: %w", err)
	}
	return out, total, nil
}

// CountByRole returns the number of accounts per role tag.
func (r *AccountRepository) CountByRole(ctx context.Context) (map[domain.Role]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$role"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("count by role: %w", err)
	}
	defer cur.Close(ctx)

	counts := make(map[domain.Role]int64)
	for cur.Next(ctx) {
		var row struct {
			Role  string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode role count: %w", err)
		}
		counts[domain.Role(row.Role)] = row.Count
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate role counts: %w", err)
	}
	return counts, nil
}

// EnsureIndexes creates the indexes the accounts collection relies on. The
// unique username index is what makes duplicate registration fail atomically
// on the server, without application-level check-then-insert.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
