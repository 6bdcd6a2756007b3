package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rutamk/dsr-final/internal/models"
)

func departmentCol(db *mongo.Database) *mongo.Collection {
	return db.Collection("departments")
}

func FetchDepartments(ctx context.Context, db *mongo.Database) ([]models.Department, error) {
	cursor, err := departmentCol(db).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var departments []models.Department
	if err := cursor.All(ctx, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func FindDepartmentByID(ctx context.Context, db *mongo.Database, id bson.ObjectID) (models.Department, error) {
	var dept models.Department
	err := departmentCol(db).FindOne(ctx, bson.M{"_id": id}).Decode(&dept)
	return dept, err
}

func FindDepartmentByName(ctx context.Context, db *mongo.Database, name string) (models.Department, error) {
	var dept models.Department
	err := departmentCol(db).FindOne(ctx, bson.M{"deptName": name}).Decode(&dept)
	return dept, err
}

func InsertDepartment(ctx context.Context, db *mongo.Database, dept models.Department) error {
	_, err := departmentCol(db).InsertOne(ctx, dept)
	return err
}

// ReplaceDepartment writes the whole aggregate back. Last writer wins: there
// is no version check, concurrent saves of the same department overwrite
// each other.
func ReplaceDepartment(ctx context.Context, db *mongo.Database, dept models.Department) error {
	res, err := departmentCol(db).ReplaceOne(ctx, bson.M{"_id": dept.ID}, dept)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func DeleteDepartment(ctx context.Context, db *mongo.Database, id bson.ObjectID) (bool, error) {
	res, err := departmentCol(db).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
