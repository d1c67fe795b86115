package user

import (
	"context"
	"errors"
	"time"

	"classhub/biz/infrastructure/config"
	"classhub/biz/infrastructure/consts"
	"classhub/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixUserCacheKey = "cache:user"
	UserCollectionName = "profiles"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewUserMongoMapper collection: %s", UserCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, UserCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, u *User) error {
	now := time.Now()
	if u.CreateTime.IsZero() {
		u.CreateTime = now
	}
	u.UpdateTime = now
	_, err := m.conn.InsertOneNoCache(ctx, u)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, u *User) error {
	u.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, u.ID, bson.M{"$set": u})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*User, error) {
	var u User
	err := m.conn.FindOneNoCache(ctx, &u, bson.M{
		consts.ID: id,
	})
	switch {
	case err == nil:
		return &u, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindAll(ctx context.Context) ([]*User, error) {
	var users []*User
	err := m.conn.Find(ctx, &users, bson.M{}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (m *MongoMapper) FindByRole(ctx context.Context, role consts.Role) ([]*User, error) {
	var users []*User
	err := m.conn.Find(ctx, &users, bson.M{"role": role}, &options.FindOptions{
		Sort: bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Touch 更新最近活跃时间, 失败只记日志
func (m *MongoMapper) Touch(ctx context.Context, id string) {
	_, err := m.conn.UpdateByIDNoCache(ctx, id, bson.M{"$set": bson.M{"last_active": time.Now()}})
	if err != nil {
		log.CtxError(ctx, "更新用户活跃时间失败: %v", err)
	}
}
