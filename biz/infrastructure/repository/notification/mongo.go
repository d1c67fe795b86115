package notification

import (
	"context"
	"errors"
	"time"

	"classhub/biz/infrastructure/config"
	"classhub/biz/infrastructure/consts"
	"classhub/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixNotificationCacheKey = "cache:notification"
	NotificationCollectionName = "notifications"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewNotificationMongoMapper collection: %s", NotificationCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, NotificationCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, n *Notification) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
		n.CreateTime = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, n)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Notification, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var n Notification
	err = m.conn.FindOneNoCache(ctx, &n, bson.M{consts.ID: oid})
	switch {
	case err == nil:
		return &n, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindByUser(ctx context.Context, userID string, skip, limit int64) ([]*Notification, int64, error) {
	var notifications []*Notification
	filter := bson.M{consts.UserID: userID}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	err = m.conn.Find(ctx, &notifications, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &limit,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// MarkRead read 标志只允许 false -> true
func (m *MongoMapper) MarkRead(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{"$set": bson.M{consts.Read: true}})
	return err
}

func (m *MongoMapper) MarkAllRead(ctx context.Context, userID string) error {
	_, err := m.conn.UpdateManyNoCache(ctx, bson.M{consts.UserID: userID, consts.Read: false},
		bson.M{"$set": bson.M{consts.Read: true}})
	return err
}

func (m *MongoMapper) CountUnread(ctx context.Context, userID string) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{consts.UserID: userID, consts.Read: false})
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
