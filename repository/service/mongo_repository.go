package service

import (
	"context"
	"errors"
	"time"

	"github.com/muhammadheryan/home-service/constant"
	"github.com/muhammadheryan/home-service/model"
	"github.com/muhammadheryan/home-service/utils/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const servicesCollection = "services"

// Mongo implements ServiceRepository on a MongoDB collection.
type Mongo struct {
	collection *mongo.Collection
}

func NewMongoServiceRepository(ctx context.Context, db *mongo.Database) ServiceRepository {
	collection := db.Collection(servicesCollection)

	// only string digests take part in the unique index, cleared codes are unset
	codeIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "service_code_hash", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"service_code_hash": bson.M{"$type": "string"}}),
	}
	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}, {Key: "created_at", Value: -1}},
	}
	phoneIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "phone_number", Value: 1}, {Key: "created_at", Value: -1}},
	}
	statusIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
	}

	if _, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{codeIndex, emailIndex, phoneIndex, statusIndex}); err != nil {
		logger.Warn("[NewMongoServiceRepository] err create indexes", zap.String("error", err.Error()))
	}

	return &Mongo{collection: collection}
}

func (m *Mongo) Create(ctx context.Context, data *model.ServiceEntity) (*model.ServiceEntity, error) {
	if _, err := m.collection.InsertOne(ctx, data); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return data, nil
}

func (m *Mongo) GetByID(ctx context.Context, id string) (*model.ServiceEntity, error) {
	return m.findOne(ctx, bson.M{"_id": id})
}

func (m *Mongo) GetLatestByContact(ctx context.Context, filter *model.ContactFilter) (*model.ServiceEntity, error) {
	query := bson.M{}
	if filter.Email != "" {
		query["email"] = filter.Email
	}
	if filter.PhoneNumber != "" {
		query["phone_number"] = filter.PhoneNumber
	}
	if len(query) == 0 {
		return nil, nil
	}

	return m.findOne(ctx, query, options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (m *Mongo) GetByInquiryCodeHash(ctx context.Context, codeHash string) (*model.ServiceEntity, error) {
	return m.findOne(ctx, bson.M{"service_code_hash": codeHash})
}

func (m *Mongo) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*model.ServiceEntity, error) {
	var entity model.ServiceEntity
	if err := m.collection.FindOne(ctx, filter, opts...).Decode(&entity); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (m *Mongo) SetOTP(ctx context.Context, id, codeHash string, channel constant.Channel, expiresAt, now time.Time) (bool, error) {
	return m.updateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"otp_code_hash":       codeHash,
		"otp_code_expires_at": expiresAt,
		"otp_channel":         channel,
		"updated_at":          now,
	}})
}

func (m *Mongo) ClearOTP(ctx context.Context, id, codeHash string, now time.Time) (bool, error) {
	return m.updateOne(ctx, bson.M{"_id": id, "otp_code_hash": codeHash}, clearOTPUpdate(bson.M{"updated_at": now}))
}

func (m *Mongo) ConsumeOTP(ctx context.Context, id, codeHash string, channel constant.Channel, now time.Time) (bool, error) {
	field := "email_verified"
	if channel == constant.ChannelPhone {
		field = "phone_verified"
	}

	filter := bson.M{
		"_id":                 id,
		"otp_code_hash":       codeHash,
		"otp_channel":         channel,
		"otp_code_expires_at": bson.M{"$gt": now},
	}
	return m.updateOne(ctx, filter, clearOTPUpdate(bson.M{field: true, "updated_at": now}))
}

func clearOTPUpdate(set bson.M) bson.M {
	set["otp_code_hash"] = nil
	set["otp_code_expires_at"] = nil
	set["otp_channel"] = nil
	return bson.M{"$set": set}
}

func (m *Mongo) Update(ctx context.Context, id string, upd *model.ServiceUpdate) (bool, error) {
	set := bson.M{"updated_at": upd.UpdatedAt}
	for _, c := range upd.Columns() {
		set[c.Column] = c.Value
	}

	filter := bson.M{"_id": id}
	if upd.WhereStatus != nil {
		filter["status"] = *upd.WhereStatus
	}
	return m.updateOne(ctx, filter, bson.M{"$set": set})
}

func (m *Mongo) SetInquiryCode(ctx context.Context, id, codeHash string, now time.Time) (bool, error) {
	filter := bson.M{"_id": id, "service_code_hash": nil}
	ok, err := m.updateOne(ctx, filter, bson.M{"$set": bson.M{"service_code_hash": codeHash, "updated_at": now}})
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return false, ErrDuplicate
	}
	return ok, err
}

func (m *Mongo) ClearInquiryCode(ctx context.Context, id, codeHash string, now time.Time) (bool, error) {
	filter := bson.M{"_id": id, "service_code_hash": codeHash}
	update := bson.M{
		"$unset": bson.M{"service_code_hash": ""},
		"$set":   bson.M{"updated_at": now},
	}
	return m.updateOne(ctx, filter, update)
}

func (m *Mongo) FindByStatus(ctx context.Context, status constant.ServiceStatus, page, limit int) ([]model.ServiceEntity, int64, error) {
	filter := bson.M{"status": status}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := m.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := make([]model.ServiceEntity, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	total, err := m.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (m *Mongo) DeleteWhere(ctx context.Context, filter model.DeleteFilter) (int64, error) {
	if filter.Empty() {
		return 0, ErrEmptyFilter
	}

	query := bson.M{}
	if filter.ID != "" {
		query["_id"] = filter.ID
	}
	if len(filter.Statuses) > 0 {
		query["status"] = bson.M{"$in": filter.Statuses}
	}
	if filter.UpdatedBefore != nil {
		query["updated_at"] = bson.M{"$lt": *filter.UpdatedBefore}
	}
	if filter.CreatedBefore != nil {
		query["created_at"] = bson.M{"$lt": *filter.CreatedBefore}
	}
	if filter.UnverifiedOnly {
		query["email_verified"] = false
		query["phone_verified"] = false
	}

	res, err := m.collection.DeleteMany(ctx, query)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *Mongo) updateOne(ctx context.Context, filter, update bson.M) (bool, error) {
	res, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
