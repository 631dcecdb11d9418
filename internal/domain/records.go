// Package domain contains the core records, their defaults and the
// persistence port.
package domain

import (
	"context"
	"errors"
)

// RecordKey names one persisted record. The version suffix leaves room for
// forward migration of the stored shape.
type RecordKey string

const (
	KeyProfile  RecordKey = "fitdiary.profile.v1"
	KeyTargets  RecordKey = "fitdiary.targets.v1"
	KeyDiary    RecordKey = "fitdiary.diary.v1"
	KeyRoutine  RecordKey = "fitdiary.routine.v1"
	KeyTraining RecordKey = "fitdiary.training.v1"
	KeyMeals    RecordKey = "fitdiary.meals.v1"
	KeyMetrics  RecordKey = "fitdiary.metrics.v1"
)

// AllKeys lists every named record in load order.
var AllKeys = []RecordKey{
	KeyProfile, KeyTargets, KeyDiary, KeyRoutine, KeyTraining, KeyMeals, KeyMetrics,
}

var (
	// ErrRecordNotFound is returned by a RecordStore when a key was never saved.
	ErrRecordNotFound = errors.New("record not found")
	// ErrQuotaExceeded is returned by a RecordStore that refuses to grow.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	// ErrNotFound indicates an unknown weekday, index or id inside a record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidDate indicates a date key that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
)

// RecordStore is the port for durable record persistence. Values are opaque
// JSON documents.
type RecordStore interface {
	Load(ctx context.Context, key RecordKey) ([]byte, error)
	Save(ctx context.Context, key RecordKey, value []byte) error
}
