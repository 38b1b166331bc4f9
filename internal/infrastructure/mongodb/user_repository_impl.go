package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fullstack-game/api/internal/domain/entity"
	"github.com/fullstack-game/api/internal/domain/repository"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database, coll string) *UserRepository {
	return &UserRepository{coll: db.Collection(coll)}
}

func (r *UserRepository) Insert(ctx context.Context, u *entity.User) error {
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	users := []entity.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, correo string) (*entity.User, error) {
	u := &entity.User{}
	err := r.coll.FindOne(ctx, bson.M{"correo": correo}).Decode(u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) ReplaceByID(ctx context.Context, id string, fields repository.UserFields) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	set := bson.M{}
	if fields.Name != nil {
		set["nombre"] = *fields.Name
	}
	if fields.Email != nil {
		set["correo"] = *fields.Email
	}

	u := &entity.User{}
	if len(set) == 0 {
		// Nothing to write; an empty $set is not a valid update document.
		err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(u)
	} else {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(u)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	u := &entity.User{}
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
