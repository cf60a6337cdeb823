package store

import (
	"context"

	"espora/database"
	"espora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ Store = (*Mongo)(nil)

// Mongo implements Store against the collections opened by the database
// package. database.ConnectMongo must have run before NewMongo.
type Mongo struct {
	users    *mongo.Collection
	posts    *mongo.Collection
	coments  *mongo.Collection
	replys   *mongo.Collection
	pushSubs *mongo.Collection
}

func NewMongo() *Mongo {
	return &Mongo{
		users:    database.Users,
		posts:    database.Posts,
		coments:  database.Coments,
		replys:   database.Replys,
		pushSubs: database.PushSubs,
	}
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

func (m *Mongo) InsertUser(ctx context.Context, u *models.User) (string, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if _, err := m.users.InsertOne(ctx, u); err != nil {
		return "", err
	}
	return u.ID.Hex(), nil
}

func (m *Mongo) GetUser(ctx context.Context, id string) (*models.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var u models.User
	err = m.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (m *Mongo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := m.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (m *Mongo) MergeUser(ctx context.Context, id string, fields map[string]interface{}) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := m.users.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) AddToUserSet(ctx context.Context, id, field, value string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := m.users.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$addToSet": bson.M{field: value}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) RemoveFromUserSet(ctx context.Context, id, field, value string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := m.users.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$pull": bson.M{field: value}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) InsertPost(ctx context.Context, p *models.Post) (string, error) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if _, err := m.posts.InsertOne(ctx, p); err != nil {
		return "", err
	}
	return p.ID.Hex(), nil
}

func (m *Mongo) GetPost(ctx context.Context, id string) (*models.Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var p models.Post
	err = m.posts.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *Mongo) ListPosts(ctx context.Context) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := m.posts.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (m *Mongo) ListPostsByUser(ctx context.Context, userID string) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := m.posts.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (m *Mongo) SetPostImgs(ctx context.Context, id string, imgs []string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := m.posts.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"imgs": imgs}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) IncPostCounter(ctx context.Context, id, field string, delta int) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := m.posts.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) InsertComent(ctx context.Context, c *models.Coment) (string, error) {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if _, err := m.coments.InsertOne(ctx, c); err != nil {
		return "", err
	}
	return c.ID.Hex(), nil
}

func (m *Mongo) GetComent(ctx context.Context, id string) (*models.Coment, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var c models.Coment
	err = m.coments.FindOne(ctx, bson.M{"_id": oid}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (m *Mongo) ListComents(ctx context.Context, postID string) ([]models.Coment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := m.coments.Find(ctx, bson.M{"postId": postID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var coments []models.Coment
	if err := cursor.All(ctx, &coments); err != nil {
		return nil, err
	}
	return coments, nil
}

func (m *Mongo) InsertReply(ctx context.Context, r *models.Reply) (string, error) {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	if _, err := m.replys.InsertOne(ctx, r); err != nil {
		return "", err
	}
	return r.ID.Hex(), nil
}

func (m *Mongo) ListReplys(ctx context.Context, comentID string) ([]models.Reply, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := m.replys.Find(ctx, bson.M{"comentId": comentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var replys []models.Reply
	if err := cursor.All(ctx, &replys); err != nil {
		return nil, err
	}
	return replys, nil
}

func (m *Mongo) InsertPushSub(ctx context.Context, s *models.PushSubscription) error {
	// One subscription per endpoint per user.
	filter := bson.M{"userId": s.UserID, "sub.endpoint": s.Sub.Endpoint}
	update := bson.M{"$set": bson.M{"userId": s.UserID, "sub": s.Sub}}
	_, err := m.pushSubs.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (m *Mongo) ListPushSubs(ctx context.Context, userID string) ([]models.PushSubscription, error) {
	cursor, err := m.pushSubs.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []models.PushSubscription
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
