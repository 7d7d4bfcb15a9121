// Package store is the persistence adapter between the HTTP handlers and
// the database. Handlers never touch the GORM client directly; they go
// through the Medications interface so they can be tested against an
// in-memory implementation.
package store

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"mediping-server/internal/models"
	"mediping-server/internal/notify"
	"mediping-server/internal/schedule"
)

// ErrNotFound is returned when a medication does not exist for the user.
var ErrNotFound = errors.New("medication not found")

// Medications is the narrow persistence surface the handlers depend on.
type Medications interface {
	LoadAll(ctx context.Context, userID string) ([]models.Medication, error)
	Get(ctx context.Context, userID, medID string) (*models.Medication, error)
	Create(ctx context.Context, med *models.Medication) error
	// UpsertLog merges the patch into the stored log under the given date
	// key only; entries for other dates are untouched, and a patched time
	// overwrites any prior status (last write wins).
	UpsertLog(ctx context.Context, userID, medID, date string, patch map[string]schedule.Status) error
	Delete(ctx context.Context, userID, medID string) error
}

// GormMedications implements Medications over MySQL.
type GormMedications struct {
	db *gorm.DB
}

func NewGormMedications(db *gorm.DB) *GormMedications {
	return &GormMedications{db: db}
}

func (s *GormMedications) LoadAll(ctx context.Context, userID string) ([]models.Medication, error) {
	var meds []models.Medication
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&meds).Error
	if err != nil {
		return nil, err
	}
	return meds, nil
}

func (s *GormMedications) Get(ctx context.Context, userID, medID string) (*models.Medication, error) {
	var med models.Medication
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", medID, userID).
		First(&med).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &med, nil
}

func (s *GormMedications) Create(ctx context.Context, med *models.Medication) error {
	return s.db.WithContext(ctx).Create(med).Error
}

func (s *GormMedications) UpsertLog(ctx context.Context, userID, medID, date string, patch map[string]schedule.Status) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var med models.Medication
		err := tx.Where("id = ? AND user_id = ?", medID, userID).First(&med).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		log := med.Log()
		day := log[date]
		if day == nil {
			day = make(map[string]schedule.Status, len(patch))
			log[date] = day
		}
		for t, status := range patch {
			day[t] = status
		}

		return tx.Model(&med).Update("logs", datatypes.NewJSONType(log)).Error
	})
}

func (s *GormMedications) Delete(ctx context.Context, userID, medID string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", medID, userID).
		Delete(&models.Medication{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DueAt implements notify.Source: doses scheduled at the given clock time
// whose entry for the date is still pending, for users who granted
// notification permission. Logs are read-only here; statuses change only
// through user action.
func (s *GormMedications) DueAt(ctx context.Context, date, clock string) ([]notify.Reminder, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where("notification_permission = ?", models.NotificationGranted).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}

	emails := make(map[string]string, len(users))
	ids := make([]string, 0, len(users))
	for _, u := range users {
		emails[u.ID] = u.Email
		ids = append(ids, u.ID)
	}

	var meds []models.Medication
	if err := s.db.WithContext(ctx).Where("user_id IN ?", ids).Find(&meds).Error; err != nil {
		return nil, err
	}

	var due []notify.Reminder
	for _, med := range meds {
		day, ok := med.Log()[date]
		if !ok {
			// Off-cadence date: no dose scheduled.
			continue
		}
		if day[clock] != schedule.StatusPending {
			continue
		}
		due = append(due, notify.Reminder{
			UserID:       med.UserID,
			Email:        emails[med.UserID],
			MedicationID: med.ID,
			Medication:   med.Name,
			Dosage:       med.Dosage,
			Time:         clock,
		})
	}
	return due, nil
}
