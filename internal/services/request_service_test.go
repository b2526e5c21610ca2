// internal/services/request_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tab1k/tbd-back/internal/config"
	"github.com/tab1k/tbd-back/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Request{},
		&models.NotificationLog{},
		&models.News{},
		&models.Case{},
		&models.CaseImage{},
		&models.Team{},
		&models.Video{},
		&models.Logo{},
	))
	return db
}

type recordingSender struct {
	calls      int
	subjects   []string
	recipients [][]string
	err        error
}

func (s *recordingSender) Send(subject, body, from string, recipients []string) error {
	s.calls++
	s.subjects = append(s.subjects, subject)
	s.recipients = append(s.recipients, recipients)
	return s.err
}

func newRequestService(t *testing.T, db *gorm.DB, sender Sender, recipients []string) *RequestService {
	t.Helper()
	cfg := config.EmailConfig{
		FromEmail:  "noreply@tbd.team",
		Recipients: recipients,
	}
	return NewRequestService(db, NewNotificationService(db, cfg, sender))
}

func TestSubmitRequestSendsNotification(t *testing.T) {
	db := newTestDB(t)
	sender := &recordingSender{}
	svc := newRequestService(t, db, sender, []string{"sales@tbd.team"})

	r, err := svc.Submit(&SubmitRequestRequest{Name: "Айдар", Phone: "+7 777 123 45 67"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, r.ID)

	assert.Equal(t, 1, sender.calls)
	assert.Contains(t, sender.subjects[0], "Айдар")
	assert.Equal(t, []string{"sales@tbd.team"}, sender.recipients[0])

	var logs []models.NotificationLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, models.NotificationStatusSent, logs[0].Status)
	assert.Equal(t, r.ID, logs[0].RequestID)
}

func TestSubmitRequestSurvivesSendFailure(t *testing.T) {
	db := newTestDB(t)
	sender := &recordingSender{err: errors.New("smtp: connection refused")}
	svc := newRequestService(t, db, sender, []string{"sales@tbd.team"})

	r, err := svc.Submit(&SubmitRequestRequest{Name: "Мария", Phone: "+7 701 555 44 33"})
	require.NoError(t, err, "mail failure must not fail the submission")

	var count int64
	db.Model(&models.Request{}).Count(&count)
	assert.EqualValues(t, 1, count, "the request row is persisted")

	var logEntry models.NotificationLog
	require.NoError(t, db.First(&logEntry, "request_id = ?", r.ID).Error)
	assert.Equal(t, models.NotificationStatusFailed, logEntry.Status)
	assert.Contains(t, logEntry.Error, "connection refused")
}

func TestSubmitRequestSkipsWhenNoRecipients(t *testing.T) {
	db := newTestDB(t)
	sender := &recordingSender{}
	svc := newRequestService(t, db, sender, nil)

	r, err := svc.Submit(&SubmitRequestRequest{Name: "Олег", Phone: "87771234567"})
	require.NoError(t, err)

	assert.Zero(t, sender.calls, "no recipients means no send attempt")

	var logEntry models.NotificationLog
	require.NoError(t, db.First(&logEntry, "request_id = ?", r.ID).Error)
	assert.Equal(t, models.NotificationStatusSkipped, logEntry.Status)
}

func TestSubmitRequestValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newRequestService(t, db, &recordingSender{}, nil)

	_, err := svc.Submit(&SubmitRequestRequest{Name: "", Phone: "+7 777 123 45 67"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Submit(&SubmitRequestRequest{Name: "Имя", Phone: "not-a-phone"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	var count int64
	db.Model(&models.Request{}).Count(&count)
	assert.Zero(t, count)
}

func TestListAndDeleteRequests(t *testing.T) {
	db := newTestDB(t)
	svc := newRequestService(t, db, &recordingSender{}, nil)

	first, err := svc.Submit(&SubmitRequestRequest{Name: "Первый", Phone: "+7 777 000 00 01"})
	require.NoError(t, err)
	_, err = svc.Submit(&SubmitRequestRequest{Name: "Второй", Phone: "+7 777 000 00 02"})
	require.NoError(t, err)

	requests, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, requests, 2)

	require.NoError(t, svc.Delete(first.ID))
	assert.ErrorIs(t, svc.Delete(first.ID), ErrNotFound)

	requests, err = svc.List()
	require.NoError(t, err)
	assert.Len(t, requests, 1)
}
