package departmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDepartmentRepo implements DepartmentRepository using MongoDB.
type MongoDepartmentRepo struct {
	coll *mongo.Collection
}

// NewMongoDepartmentRepo constructs the repository and ensures its indexes.
func NewMongoDepartmentRepo() *MongoDepartmentRepo {
	repo := &MongoDepartmentRepo{
		coll: database.DB().Collection("departments"),
	}
	if err := repo.ensureIndexes(); err != nil {
		panic(err)
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoDepartmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: "text"}, {Key: "services.name", Value: "text"}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create department indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a department document by its ID.
func (r *MongoDepartmentRepo) GetByID(id string) (*models.Department, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var dept models.Department
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&dept); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch department with id %s: %w", id, err)
	}
	return &dept, nil
}

// GetAll returns every department document.
func (r *MongoDepartmentRepo) GetAll() ([]models.Department, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer cursor.Close(ctx)

	var depts []models.Department
	for cursor.Next(ctx) {
		var dept models.Department
		if err := cursor.Decode(&dept); err != nil {
			return nil, fmt.Errorf("failed to decode department: %w", err)
		}
		depts = append(depts, dept)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("department cursor error: %w", err)
	}
	return depts, nil
}

// Create inserts a new department document.
func (r *MongoDepartmentRepo) Create(dept *models.Department) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	dept.CreatedAt = now
	dept.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, dept); err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}
	return nil
}

// Update modifies an existing department document.
func (r *MongoDepartmentRepo) Update(dept *models.Department) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	dept.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": dept.ID}, bson.M{"$set": dept})
	if err != nil {
		return fmt.Errorf("failed to update department with id %s: %w", dept.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a department document by its ID.
func (r *MongoDepartmentRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete department with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddDoctor adds a doctor reference to the department, once.
func (r *MongoDepartmentRepo) AddDoctor(id, doctorID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{"doctorIds": doctorID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to add doctor %s to department %s: %w", doctorID, id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveDoctor removes a doctor reference from the department.
func (r *MongoDepartmentRepo) RemoveDoctor(id, doctorID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"doctorIds": doctorID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to remove doctor %s from department %s: %w", doctorID, id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStats stores recomputed derived statistics.
func (r *MongoDepartmentRepo) SetStats(id string, stats models.DepartmentStats) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"stats":     stats,
		"updatedAt": time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update stats for department %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
