package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"transportreports/models"
)

type MongoLoadingMemoRepo struct {
	DB *mongo.Database
}

func NewMongoLoadingMemoRepo(db *mongo.Database) *MongoLoadingMemoRepo {
	return &MongoLoadingMemoRepo{DB: db}
}

func (r *MongoLoadingMemoRepo) GetLoadingMemo(ctx context.Context, ldmNo string) (*models.LoadingMemo, error) {
	var memo models.LoadingMemo
	err := r.DB.Collection("loading_memo").FindOne(ctx, bson.M{"ldm_no": ldmNo}).Decode(&memo)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &memo, nil
}
