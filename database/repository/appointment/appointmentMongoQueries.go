// File: database/repository/appointment/appointmentMongoQueries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoAppointmentRepo) findAll(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Appointment, error) {
	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	for cursor.Next(ctx) {
		var appt models.Appointment
		if err := cursor.Decode(&appt); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appts = append(appts, appt)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("appointment cursor error: %w", err)
	}
	return appts, nil
}

// FindByDoctorAndDateRange returns the doctor's appointments starting in
// [start, end), ordered by start time.
func (r *MongoAppointmentRepo) FindByDoctorAndDateRange(doctorID string, start, end time.Time) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId":  doctorID,
		"startTime": bson.M{"$gte": start, "$lt": end},
	}
	return r.findAll(ctx, filter, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
}

// FindByPatient returns a patient's appointments, most recent first.
func (r *MongoAppointmentRepo) FindByPatient(patientID string) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"patientId": patientID}
	return r.findAll(ctx, filter, options.Find().SetSort(bson.D{{Key: "startTime", Value: -1}}))
}

// FindCompletedByDoctors returns completed appointments for the given doctors.
func (r *MongoAppointmentRepo) FindCompletedByDoctors(doctorIDs []string) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId": bson.M{"$in": doctorIDs},
		"status":   models.StatusCompleted,
	}
	return r.findAll(ctx, filter)
}

// DistinctPatientsByDoctors returns distinct patient IDs with a completed
// appointment under any of the given doctors.
func (r *MongoAppointmentRepo) DistinctPatientsByDoctors(doctorIDs []string) ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId": bson.M{"$in": doctorIDs},
		"status":   models.StatusCompleted,
	}
	values, err := r.coll.Distinct(ctx, "patientId", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct patients: %w", err)
	}

	patientIDs := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok {
			patientIDs = append(patientIDs, id)
		}
	}
	return patientIDs, nil
}
