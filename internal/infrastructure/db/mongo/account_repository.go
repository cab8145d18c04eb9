package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/playgroundlabs/playground-api/internal/core/domain"
)

const accountCollection = "accounts"

// AccountRepository implements ports.AccountRepository using MongoDB.
// The unique index on emailid is the authoritative enforcement of account
// uniqueness; concurrent inserts racing on the same email resolve here, not
// in the service's pre-check.
type AccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(accountCollection)}
}

// EnsureIndexes creates the unique emailid index. Call once at startup.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "emailid", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create emailid index: %w", err)
	}
	return nil
}

type mongoAccount struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	EmailID      string             `bson:"emailid"`
	FirstName    string             `bson:"firstname"`
	LastName     string             `bson:"lastname"`
	PhoneNumber  string             `bson:"phoneno,omitempty"`
	PasswordHash string             `bson:"password,omitempty"`
	AuthMethod   string             `bson:"auth_method"`
	CreatedAt    int64              `bson:"created_at"`
}

func (r *AccountRepository) Insert(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	doc := mongoAccount{
		EmailID:      account.EmailID,
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		PhoneNumber:  account.PhoneNumber,
		PasswordHash: account.PasswordHash,
		AuthMethod:   string(account.AuthMethod),
		CreatedAt:    account.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("%w: insert account: %v", domain.ErrStoreUnavailable, err)
	}

	created := *account
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, emailID string) (*domain.Account, error) {
	var ma mongoAccount
	if err := r.coll.FindOne(ctx, bson.M{"emailid": emailID}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("%w: find account: %v", domain.ErrStoreUnavailable, err)
	}

	return &domain.Account{
		ID:           ma.ID.Hex(),
		EmailID:      ma.EmailID,
		FirstName:    ma.FirstName,
		LastName:     ma.LastName,
		PhoneNumber:  ma.PhoneNumber,
		PasswordHash: ma.PasswordHash,
		AuthMethod:   domain.AuthMethod(ma.AuthMethod),
		CreatedAt:    unixToTime(ma.CreatedAt),
	}, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
