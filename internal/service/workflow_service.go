package service

import (
	"crypto/rand"
	"errors"
	"log"
	"math/big"
	"strings"

	"puntadas/internal/domain"
	"puntadas/internal/models"
	"puntadas/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrRequestNotFound     = errors.New("request not found")
	ErrDescriptionTooShort = errors.New("description must be at least 10 characters")
	ErrDepositTooLow       = errors.New("deposit amount below minimum")
	ErrInvalidPackageType  = errors.New("invalid package type")
	ErrInvalidStatus       = errors.New("invalid request status")
	ErrIllegalTransition   = errors.New("illegal status transition")
)

// trackingAlphabet excludes ambiguous characters (0/O, 1/I).
const trackingAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const trackingCodeLen = 6

// WorkflowService owns the request status state machine.
type WorkflowService struct {
	customerRepo   *repository.CustomerRepository
	requestRepo    *repository.RequestRepository
	completionRepo *repository.CompletionNotificationRepository
	notifSvc       *NotificationService
}

func NewWorkflowService(
	customerRepo *repository.CustomerRepository,
	requestRepo *repository.RequestRepository,
	completionRepo *repository.CompletionNotificationRepository,
	notifSvc *NotificationService,
) *WorkflowService {
	return &WorkflowService{
		customerRepo:   customerRepo,
		requestRepo:    requestRepo,
		completionRepo: completionRepo,
		notifSvc:       notifSvc,
	}
}

type CreateRequestInput struct {
	CustomerID        uint
	Description       string
	PackageType       string
	DepositAmount     int64
	ReferenceImageURL string
}

// CreateRequest validates input, inserts the request at pending with a
// fresh tracking code, and fires a best-effort new-order notification.
func (s *WorkflowService) CreateRequest(in CreateRequestInput) (*models.Request, error) {
	if len(strings.TrimSpace(in.Description)) < 10 {
		return nil, ErrDescriptionTooShort
	}
	if !domain.ValidPackageType(in.PackageType) {
		return nil, ErrInvalidPackageType
	}
	if in.DepositAmount < domain.MinDepositCents {
		return nil, ErrDepositTooLow
	}
	customer, err := s.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	code, err := s.freshTrackingCode()
	if err != nil {
		return nil, err
	}
	req := &models.Request{
		CustomerID:        in.CustomerID,
		Description:       in.Description,
		ReferenceImageURL: in.ReferenceImageURL,
		PackageType:       in.PackageType,
		DepositAmount:     in.DepositAmount,
		Status:            domain.RequestStatusPending,
		TrackingCode:      code,
	}
	if err := s.requestRepo.Create(req); err != nil {
		return nil, err
	}

	if err := s.notifSvc.NotifyNewRequest(
		customer.FullName(), customer.Email, customer.Phone,
		domain.PackageLabels[in.PackageType], in.Description,
	); err != nil && !errors.Is(err, ErrNotifierDisabled) {
		log.Printf("[workflow] new-request notification failed: %v", err)
	}
	return req, nil
}

type UpdateRequestInput struct {
	Status     *string
	AdminNotes *string
}

// UpdateStatus applies an admin update. Status changes go through the
// allowed-transition table; an illegal move nothing is persisted.
func (s *WorkflowService) UpdateStatus(requestID uint, in UpdateRequestInput) (*models.Request, error) {
	req, err := s.requestRepo.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if in.Status != nil {
		next := *in.Status
		if !validRequestStatus(next) {
			return nil, ErrInvalidStatus
		}
		if next != req.Status {
			if !domain.CanTransition(req.Status, next) {
				return nil, ErrIllegalTransition
			}
			req.Status = next
		}
	}
	if in.AdminNotes != nil {
		req.AdminNotes = *in.AdminNotes
	}
	if err := s.requestRepo.Update(req); err != nil {
		return nil, err
	}
	return req, nil
}

// MarkReady sets the request to completed and records a completion
// notification with the fixed message. Re-invoking appends another
// notification; there is no dedup. Only a cancelled order cannot be
// marked ready.
func (s *WorkflowService) MarkReady(requestID, customerID uint) (*models.CompletionNotification, error) {
	req, err := s.requestRepo.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if req.Status == domain.RequestStatusCancelled {
		return nil, ErrIllegalTransition
	}
	req.Status = domain.RequestStatusCompleted
	if err := s.requestRepo.Update(req); err != nil {
		return nil, err
	}

	notice := &models.CompletionNotification{
		RequestID:      requestID,
		CustomerID:     customerID,
		Message:        domain.CompletionMessage,
		DeliveryStatus: domain.DeliveryStatusPending,
	}
	if err := s.completionRepo.Create(notice); err != nil {
		return nil, err
	}

	customerName := ""
	if c, err := s.customerRepo.GetByID(customerID); err == nil {
		customerName = c.FullName()
	}
	if err := s.notifSvc.NotifyOrderReady(customerName, requestID); err != nil {
		if !errors.Is(err, ErrNotifierDisabled) {
			log.Printf("[workflow] ready notification failed: %v", err)
		}
		notice.DeliveryStatus = domain.DeliveryStatusFailed
	} else {
		notice.DeliveryStatus = domain.DeliveryStatusSent
	}
	if err := s.completionRepo.Update(notice); err != nil {
		log.Printf("[workflow] delivery status update failed: %v", err)
	}
	return notice, nil
}

func (s *WorkflowService) freshTrackingCode() (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code, err := randomTrackingCode()
		if err != nil {
			return "", err
		}
		_, err = s.requestRepo.GetByTrackingCode(code)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errors.New("could not allocate tracking code")
}

func randomTrackingCode() (string, error) {
	b := make([]byte, trackingCodeLen)
	max := big.NewInt(int64(len(trackingAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = trackingAlphabet[n.Int64()]
	}
	return string(b), nil
}

func validRequestStatus(s string) bool {
	switch s {
	case domain.RequestStatusPending, domain.RequestStatusDepositPaid,
		domain.RequestStatusInProgress, domain.RequestStatusCompleted,
		domain.RequestStatusCancelled:
		return true
	}
	return false
}
