package service

import (
	"strings"
	"testing"

	"puntadas/internal/domain"
	"puntadas/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTrackingStack(t *testing.T) (*TrackingService, *WorkflowService, *gorm.DB) {
	db := newTestDB(t)
	customerRepo := repository.NewCustomerRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	workflow := NewWorkflowService(customerRepo, requestRepo,
		repository.NewCompletionNotificationRepository(db), disabledNotifier())
	tracking := NewTrackingService(requestRepo, repository.NewTrackingRepository(db),
		"https://puntadas-de-mechis.com")
	return tracking, workflow, db
}

func TestGenerateQR(t *testing.T) {
	tracking, workflow, db := newTrackingStack(t)
	customer := seedCustomer(t, db, "test@example.com")
	req := seedRequest(t, workflow, customer.ID)

	record, err := tracking.GenerateQR(req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TrackingStatusCreated, record.Status)
	assert.True(t, strings.HasPrefix(record.QRCode, "data:image/png;base64,"))

	// Second call returns the same record instead of minting another.
	again, err := tracking.GenerateQR(req.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, again.ID)
	assert.Equal(t, record.QRCode, again.QRCode)

	_, err = tracking.GenerateQR(9999)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestTrackingUpdateStatus(t *testing.T) {
	tracking, workflow, db := newTrackingStack(t)
	customer := seedCustomer(t, db, "test@example.com")
	req := seedRequest(t, workflow, customer.ID)
	_, err := tracking.GenerateQR(req.ID)
	require.NoError(t, err)

	for _, status := range []string{
		domain.TrackingStatusInProduction,
		domain.TrackingStatusReady,
		domain.TrackingStatusShipped,
		domain.TrackingStatusDelivered,
	} {
		got, err := tracking.UpdateStatus(req.ID, status)
		require.NoError(t, err, "advance to %s", status)
		assert.Equal(t, status, got.Status)
	}

	_, err = tracking.UpdateStatus(req.ID, domain.TrackingStatusReady)
	assert.ErrorIs(t, err, ErrTrackingBackward)

	_, err = tracking.UpdateStatus(req.ID, "lost")
	assert.ErrorIs(t, err, ErrInvalidTrackingStatus)

	_, err = tracking.UpdateStatus(9999, domain.TrackingStatusReady)
	assert.ErrorIs(t, err, ErrTrackingNotFound)
}

func TestTrackingUpdateSkipsSteps(t *testing.T) {
	tracking, workflow, db := newTrackingStack(t)
	customer := seedCustomer(t, db, "test@example.com")
	req := seedRequest(t, workflow, customer.ID)
	_, err := tracking.GenerateQR(req.ID)
	require.NoError(t, err)

	// Jumping several steps forward is allowed; only regression is not.
	got, err := tracking.UpdateStatus(req.ID, domain.TrackingStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, domain.TrackingStatusShipped, got.Status)
}

func TestLookup(t *testing.T) {
	tracking, workflow, db := newTrackingStack(t)
	customer := seedCustomer(t, db, "test@example.com")
	req := seedRequest(t, workflow, customer.ID)

	// Before any QR exists the lookup still resolves the request.
	found, record, err := tracking.Lookup(req.TrackingCode)
	require.NoError(t, err)
	assert.Equal(t, req.ID, found.ID)
	assert.Nil(t, record)

	_, err = tracking.GenerateQR(req.ID)
	require.NoError(t, err)
	found, record, err = tracking.Lookup(req.TrackingCode)
	require.NoError(t, err)
	assert.Equal(t, req.ID, found.ID)
	require.NotNil(t, record)
	assert.Equal(t, domain.TrackingStatusCreated, record.Status)

	_, _, err = tracking.Lookup("ab")
	assert.ErrorIs(t, err, ErrInvalidTrackingCode)

	_, _, err = tracking.Lookup("ZZZZZZ")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}
