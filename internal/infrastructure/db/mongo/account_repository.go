package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arleti/materials-system/internal/core/domain"
)

const accountCollection = "accounts"

type MongoAccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *MongoAccountRepository {
	return &MongoAccountRepository{coll: db.Collection(accountCollection)}
}

type accountDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Email          string             `bson:"email"`
	CredentialHash string             `bson:"password_hash"`
	Role           string             `bson:"role"`
	Status         int                `bson:"status"`
	CreatedAt      int64              `bson:"created_at"`
}

// EnsureIndexes creates the unique email index. The index is what makes
// Create a true atomic insert-if-absent: two concurrent registrations with
// the same email cannot both pass.
func (r *MongoAccountRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

func (r *MongoAccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	doc := accountDoc{
		Email:          account.Email,
		CredentialHash: account.CredentialHash,
		Role:           account.Role,
		Status:         int(account.Status),
		CreatedAt:      account.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := *account
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": email}, domain.ErrAccountNotFound)
}

func (r *MongoAccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid}, domain.ErrAccountNotFound)
}

func (r *MongoAccountRepository) FindAdmin(ctx context.Context) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"role": domain.RoleAdmin}, domain.ErrAdminNotFound)
}

func (r *MongoAccountRepository) findOne(ctx context.Context, filter bson.M, notFound error) (*domain.Account, error) {
	var doc accountDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, notFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return docToAccount(doc), nil
}

// Activate flips a pending worker to active in a single conditional update.
// The filter carries role and status, so unknown ids, admins and
// already-active workers all fall through to ErrWorkerNotFound.
func (r *MongoAccountRepository) Activate(ctx context.Context, id string) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrWorkerNotFound
	}

	filter := bson.M{
		"_id":    oid,
		"role":   domain.RoleWorker,
		"status": int(domain.StatusPending),
	}
	update := bson.M{"$set": bson.M{"status": int(domain.StatusActive)}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc accountDoc
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("activate account: %w", err)
	}
	return docToAccount(doc), nil
}

// Delete removes a worker only when id and email both match, guarding
// against stale client-side ids racing a concurrent removal.
func (r *MongoAccountRepository) Delete(ctx context.Context, id, email string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrWorkerNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{
		"_id":   oid,
		"email": email,
		"role":  domain.RoleWorker,
	})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrWorkerNotFound
	}
	return nil
}

func (r *MongoAccountRepository) UpdateCredential(ctx context.Context, id, credentialHash string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAccountNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"password_hash": credentialHash}},
	)
	if err != nil {
		return fmt.Errorf("update credential: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *MongoAccountRepository) ListWorkers(ctx context.Context) ([]*domain.Account, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})
	cursor, err := r.coll.Find(ctx, bson.M{"role": domain.RoleWorker}, opts)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer cursor.Close(ctx)

	var accounts []*domain.Account
	for cursor.Next(ctx) {
		var doc accountDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode account: %w", err)
		}
		accounts = append(accounts, docToAccount(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	return accounts, nil
}

func docToAccount(doc accountDoc) *domain.Account {
	return &domain.Account{
		ID:             doc.ID.Hex(),
		Email:          doc.Email,
		CredentialHash: doc.CredentialHash,
		Role:           doc.Role,
		Status:         domain.AccountStatus(doc.Status),
		CreatedAt:      unixToTime(doc.CreatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
