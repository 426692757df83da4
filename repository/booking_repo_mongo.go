package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"transportreports/models"
)

type MongoBookingRepo struct {
	DB *mongo.Database
}

func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{DB: db}
}

// bookingDoc is the stored shape: details are embedded and amounts are Decimal128.
type bookingDoc struct {
	ID             int64                `bson:"_id"`
	LRNumber       string               `bson:"lr_number"`
	FromBranchID   int64                `bson:"from_branch_id"`
	FromBranchName string               `bson:"from_branch_name"`
	ToBranchID     int64                `bson:"to_branch_id"`
	ToBranchName   string               `bson:"to_branch_name"`
	BookingDate    time.Time            `bson:"booking_date"`
	PrivateMark    string               `bson:"private_mark"`
	PaymentType    int                  `bson:"payment_type"`
	GrandTotal     primitive.Decimal128 `bson:"grand_total"`
	EwayBillNo     string               `bson:"eway_bill_no"`
	Details        []detailDoc          `bson:"details"`
}

type detailDoc struct {
	Article      int                  `bson:"article"`
	Weight       primitive.Decimal128 `bson:"weight"`
	ChargeWeight primitive.Decimal128 `bson:"charge_weight"`
	GoodsType    string               `bson:"goods_type"`
	Shape        string               `bson:"shape"`
}

func toDecimal(d primitive.Decimal128) (decimal.Decimal, error) {
	s := d.String()
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func (d bookingDoc) toModel() (models.Booking, error) {
	total, err := toDecimal(d.GrandTotal)
	if err != nil {
		return models.Booking{}, fmt.Errorf("booking %d grand_total: %w", d.ID, err)
	}
	b := models.Booking{
		ID:             d.ID,
		LRNumber:       d.LRNumber,
		FromBranchID:   d.FromBranchID,
		FromBranchName: d.FromBranchName,
		ToBranchID:     d.ToBranchID,
		ToBranchName:   d.ToBranchName,
		BookingDate:    d.BookingDate,
		PrivateMark:    d.PrivateMark,
		PaymentType:    models.PaymentType(d.PaymentType),
		GrandTotal:     total,
		EwayBillNo:     d.EwayBillNo,
	}
	for _, dd := range d.Details {
		weight, err := toDecimal(dd.Weight)
		if err != nil {
			return models.Booking{}, fmt.Errorf("booking %d weight: %w", d.ID, err)
		}
		chargeWeight, err := toDecimal(dd.ChargeWeight)
		if err != nil {
			return models.Booking{}, fmt.Errorf("booking %d charge_weight: %w", d.ID, err)
		}
		b.Details = append(b.Details, models.BookingDetail{
			BookingID:    d.ID,
			Article:      dd.Article,
			Weight:       weight,
			ChargeWeight: chargeWeight,
			GoodsType:    dd.GoodsType,
			Shape:        dd.Shape,
		})
	}
	return b, nil
}

// bookingFilterDoc builds the find filter. ids restricts to a memo's bookings.
func bookingFilterDoc(f BookingFilter, ids []int64) bson.M {
	filter := bson.M{}
	if ids != nil {
		filter["_id"] = bson.M{"$in": ids}
	}
	if f.FromBranchID != 0 {
		filter["from_branch_id"] = f.FromBranchID
	}
	if f.ToBranchID != 0 {
		filter["to_branch_id"] = f.ToBranchID
	}
	date := bson.M{}
	if !f.From.IsZero() {
		date["$gte"] = f.From
	}
	if !f.To.IsZero() {
		date["$lte"] = f.To
	}
	if len(date) > 0 {
		filter["booking_date"] = date
	}
	return filter
}

func (r *MongoBookingRepo) GetBookings(ctx context.Context, f BookingFilter) ([]models.Booking, error) {
	var ids []int64
	if f.LDMNo != "" {
		var memo models.LoadingMemo
		err := r.DB.Collection("loading_memo").FindOne(ctx, bson.M{"ldm_no": f.LDMNo}).Decode(&memo)
		if err == mongo.ErrNoDocuments {
			return []models.Booking{}, nil
		}
		if err != nil {
			return nil, err
		}
		ids = append([]int64{}, memo.BookingIDs...)
	}

	cur, err := r.DB.Collection("booking").Find(ctx, bookingFilterDoc(f, ids), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Booking{}
	for cur.Next(ctx) {
		var doc bookingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		b, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, cur.Err()
}
