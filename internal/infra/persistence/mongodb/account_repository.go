package mongodb

import (
	"context"

	"signup/internal/domain/entity"
	"signup/internal/domain/repository"
	"signup/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// accountDocument mirrors a document in the accounts collection.
type accountDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
}

type accountRepository struct {
	collection *mongo.Collection
}

// NewAccountRepository returns a repository.AccountRepository over the given collection.
func NewAccountRepository(collection *mongo.Collection) repository.AccountRepository {
	return &accountRepository{collection: collection}
}

// Add inserts the account and reads it back by the generated _id.
func (repo *accountRepository) Add(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	result, err := repo.collection.InsertOne(ctx, fromAccountDomain(account))
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert account")
	}

	var stored accountDocument
	if err := repo.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&stored); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.Wrap(err, "inserted account not found")
		}

		return nil, errors.Wrap(err, "failed to read inserted account")
	}

	return toAccountDomain(&stored), nil
}

// fromAccountDomain drops any caller-supplied ID; the driver generates _id.
func fromAccountDomain(account *entity.Account) *accountDocument {
	return &accountDocument{
		Name:     account.Name,
		Email:    account.Email,
		Password: account.Password,
	}
}

func toAccountDomain(doc *accountDocument) *entity.Account {
	return &entity.Account{
		ID:       doc.ID.Hex(),
		Name:     doc.Name,
		Email:    doc.Email,
		Password: doc.Password,
	}
}
