package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"transportreports/models"
)

// companyID is the _id of the single letterhead document.
const companyID int64 = 1

type MongoCompanyRepo struct {
	DB *mongo.Database
}

func NewMongoCompanyRepo(db *mongo.Database) *MongoCompanyRepo {
	return &MongoCompanyRepo{DB: db}
}

func (r *MongoCompanyRepo) SaveCompany(ctx context.Context, c *models.Company) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	c.ID = companyID

	_, err := r.DB.Collection("company").ReplaceOne(ctx,
		bson.M{"_id": companyID},
		c,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *MongoCompanyRepo) GetCompany(ctx context.Context) (*models.Company, error) {
	var c models.Company
	err := r.DB.Collection("company").FindOne(ctx, bson.M{"_id": companyID}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
