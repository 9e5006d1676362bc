package service

import (
	"encoding/base64"
	"errors"
	"fmt"

	"puntadas/internal/domain"
	"puntadas/internal/models"
	"puntadas/internal/repository"

	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

var (
	ErrTrackingNotFound      = errors.New("tracking record not found")
	ErrInvalidTrackingStatus = errors.New("invalid tracking status")
	ErrTrackingBackward      = errors.New("tracking status cannot move backward")
	ErrInvalidTrackingCode   = errors.New("tracking code must be 6 characters")
)

// TrackingService mints QR tracking records and serves public lookups.
type TrackingService struct {
	requestRepo  *repository.RequestRepository
	trackingRepo *repository.TrackingRepository
	baseURL      string
}

func NewTrackingService(requestRepo *repository.RequestRepository, trackingRepo *repository.TrackingRepository, publicBaseURL string) *TrackingService {
	return &TrackingService{requestRepo: requestRepo, trackingRepo: trackingRepo, baseURL: publicBaseURL}
}

// GenerateQR renders the public tracking URL for a request into a PNG data
// URI and persists the tracking record at created. A request has at most
// one record; repeat calls return the existing one.
func (s *TrackingService) GenerateQR(requestID uint) (*models.QRCodeTracking, error) {
	req, err := s.requestRepo.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if existing, err := s.trackingRepo.GetByRequestID(requestID); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	trackURL := fmt.Sprintf("%s/track/%s", s.baseURL, req.TrackingCode)
	png, err := qrcode.Encode(trackURL, qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}
	record := &models.QRCodeTracking{
		RequestID: requestID,
		QRCode:    "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		Status:    domain.TrackingStatusCreated,
	}
	if err := s.trackingRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *TrackingService) GetByRequestID(requestID uint) (*models.QRCodeTracking, error) {
	t, err := s.trackingRepo.GetByRequestID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrackingNotFound
		}
		return nil, err
	}
	return t, nil
}

// UpdateStatus advances the production state. The progression is
// forward-only along created → in_production → ready → shipped → delivered.
func (s *TrackingService) UpdateStatus(requestID uint, newStatus string) (*models.QRCodeTracking, error) {
	target := domain.TrackingStep(newStatus)
	if target < 0 {
		return nil, ErrInvalidTrackingStatus
	}
	t, err := s.GetByRequestID(requestID)
	if err != nil {
		return nil, err
	}
	if target < domain.TrackingStep(t.Status) {
		return nil, ErrTrackingBackward
	}
	t.Status = newStatus
	if err := s.trackingRepo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Lookup resolves a public 6-character tracking code to its request and,
// when present, the QR tracking record.
func (s *TrackingService) Lookup(code string) (*models.Request, *models.QRCodeTracking, error) {
	if len(code) != 6 {
		return nil, nil, ErrInvalidTrackingCode
	}
	req, err := s.requestRepo.GetByTrackingCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrRequestNotFound
		}
		return nil, nil, err
	}
	tracking, err := s.trackingRepo.GetByRequestID(req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return req, nil, nil
		}
		return nil, nil, err
	}
	return req, tracking, nil
}
