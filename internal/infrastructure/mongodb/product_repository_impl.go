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

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database, coll string) *ProductRepository {
	return &ProductRepository{coll: db.Collection(coll)}
}

func (r *ProductRepository) Insert(ctx context.Context, p *entity.Product) error {
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	products := []entity.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) ReplaceByID(ctx context.Context, id string, fields repository.ProductFields) (*entity.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	set := bson.M{}
	if fields.Name != nil {
		set["nombre"] = *fields.Name
	}
	if fields.Price != nil {
		set["precio"] = *fields.Price
	}
	if fields.Description != nil {
		set["descripcion"] = *fields.Description
	}

	p := &entity.Product{}
	if len(set) == 0 {
		// Nothing to write; an empty $set is not a valid update document.
		err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(p)
	} else {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(p)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) DeleteByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	p := &entity.Product{}
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
