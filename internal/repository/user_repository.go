package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rutamk/dsr-final/internal/models"
)

func userCol(db *mongo.Database) *mongo.Collection {
	return db.Collection("users")
}

func FetchUsers(ctx context.Context, db *mongo.Database) ([]models.User, error) {
	cursor, err := userCol(db).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func FindUserByID(ctx context.Context, db *mongo.Database, id bson.ObjectID) (models.User, error) {
	var user models.User
	err := userCol(db).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	return user, err
}

func FindUserByEmail(ctx context.Context, db *mongo.Database, email string) (models.User, error) {
	var user models.User
	err := userCol(db).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	return user, err
}

// FindHODForDepartment resolves the HOD whose scope snapshot mentions the
// department name, used to CC report mails.
func FindHODForDepartment(ctx context.Context, db *mongo.Database, deptName string) (models.User, error) {
	var hod models.User
	filter := bson.M{
		"role":        models.RoleHOD,
		"departments": bson.M{"$elemMatch": bson.M{"name": deptName}},
	}
	err := userCol(db).FindOne(ctx, filter).Decode(&hod)
	return hod, err
}

func InsertUser(ctx context.Context, db *mongo.Database, user models.User) (bson.ObjectID, error) {
	res, err := userCol(db).InsertOne(ctx, user)
	if err != nil {
		return bson.NilObjectID, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

// ReplaceUser is a whole-record replace: the scope snapshot is overwritten,
// not merged with what was stored before.
func ReplaceUser(ctx context.Context, db *mongo.Database, user models.User) error {
	res, err := userCol(db).ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func DeleteUser(ctx context.Context, db *mongo.Database, id bson.ObjectID) error {
	_, err := userCol(db).DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// IsDuplicateKey reports whether err is a unique-index violation (code 11000).
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
