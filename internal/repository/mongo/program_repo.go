package mongo

import (
	"bpump/fitness-backend/internal/domain"
	"bpump/fitness-backend/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const programCollectionName = "programs"

// mongoProgramRepository implements the repository.ProgramRepository
// interface using MongoDB. Programs live in their own collection with a
// compound unique index on (owner, id); the slug id alone is not unique.
type mongoProgramRepository struct {
	collection *mongo.Collection
}

// NewMongoProgramRepository creates a new instance of mongoProgramRepository.
func NewMongoProgramRepository(db *mongo.Database) repository.ProgramRepository {
	return &mongoProgramRepository{
		collection: db.Collection(programCollectionName),
	}
}

// Create inserts a new program. A duplicate (owner, id) pair maps to
// repository.ErrConflict.
func (r *mongoProgramRepository) Create(ctx context.Context, program *domain.Program) error {
	if program.ID == "" || program.Owner == "" {
		return errors.New("program id and owner are required")
	}

	_, err := r.collection.InsertOne(ctx, program)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrConflict
		}
		return err
	}
	return nil
}

// Get retrieves one program by its (owner, id) pair.
func (r *mongoProgramRepository) Get(ctx context.Context, owner, id string) (*domain.Program, error) {
	var program domain.Program
	filter := bson.M{"owner": owner, "id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&program)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &program, nil
}

// ListByOwner retrieves all programs belonging to one owner.
func (r *mongoProgramRepository) ListByOwner(ctx context.Context, owner string) ([]domain.Program, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	programs := []domain.Program{}
	if err := cursor.All(ctx, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

// Update replaces the stored record matching (program.Owner, program.ID).
func (r *mongoProgramRepository) Update(ctx context.Context, program *domain.Program) error {
	filter := bson.M{"owner": program.Owner, "id": program.ID}

	result, err := r.collection.ReplaceOne(ctx, filter, program)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes one program by its (owner, id) pair.
func (r *mongoProgramRepository) Delete(ctx context.Context, owner, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"owner": owner, "id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteAllByOwner removes every program of one owner. Matching zero
// documents is fine; the account-deletion cascade must succeed for users
// who deleted all their programs.
func (r *mongoProgramRepository) DeleteAllByOwner(ctx context.Context, owner string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"owner": owner})
	return err
}

// ReassignOwner rewrites the owner field after a user rename. The user
// document has already been renamed at this point, so the filter matches
// the old owner reference still present on the programs.
func (r *mongoProgramRepository) ReassignOwner(ctx context.Context, oldOwner, newOwner string) error {
	update := bson.M{"$set": bson.M{"owner": newOwner}}
	_, err := r.collection.UpdateMany(ctx, bson.M{"owner": oldOwner}, update)
	return err
}

// EnsureProgramIndexes creates necessary indexes for the programs collection.
// Call this once during application startup.
func EnsureProgramIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
