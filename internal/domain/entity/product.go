package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is stored in the "productos" collection. All three descriptive
// fields are required at creation; the store itself enforces nothing.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"nombre" json:"nombre"`
	Price       float64            `bson:"precio" json:"precio"`
	Description string             `bson:"descripcion" json:"descripcion"`
}
