package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"puntadas/internal/domain"
	"puntadas/internal/models"
	"puntadas/internal/repository"
	"puntadas/pkg/bold"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrAmountTooLow      = errors.New("amount below minimum")
	ErrAlreadyAttached   = errors.New("payment already linked to another transaction")
	ErrPaymentNotPending = errors.New("payment is not pending")
)

// PaymentService bridges the Bold hosted checkout with internal order state.
type PaymentService struct {
	paymentRepo  *repository.PaymentRepository
	requestRepo  *repository.RequestRepository
	customerRepo *repository.CustomerRepository
	notifSvc     *NotificationService
	gateway      *bold.Client
}

func NewPaymentService(
	paymentRepo *repository.PaymentRepository,
	requestRepo *repository.RequestRepository,
	customerRepo *repository.CustomerRepository,
	notifSvc *NotificationService,
	gateway *bold.Client,
) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		requestRepo:  requestRepo,
		customerRepo: customerRepo,
		notifSvc:     notifSvc,
		gateway:      gateway,
	}
}

// Initiate creates a pending payment and returns the hosted checkout URL
// the caller should redirect the customer to.
func (s *PaymentService) Initiate(requestID, customerID uint, amount int64) (*models.Payment, string, error) {
	if amount < domain.MinDepositCents {
		return nil, "", ErrAmountTooLow
	}
	if _, err := s.requestRepo.GetByID(requestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrRequestNotFound
		}
		return nil, "", err
	}
	if _, err := s.customerRepo.GetByID(customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrCustomerNotFound
		}
		return nil, "", err
	}
	p := &models.Payment{
		RequestID:      requestID,
		CustomerID:     customerID,
		Amount:         amount,
		Currency:       domain.CurrencyCOP,
		Status:         domain.PaymentStatusPending,
		Reference:      bold.Reference(requestID),
		IdempotencyKey: strings.ReplaceAll(uuid.New().String(), "-", ""),
	}
	if err := s.paymentRepo.Create(p); err != nil {
		return nil, "", err
	}
	return p, s.gateway.CheckoutURL(p.Reference, amount, p.Currency), nil
}

// Attach stores the Bold transaction id on a pending payment. The checkout
// page reports the id back to the client after redirect; without this step
// the webhook lookup by transaction id could never match.
func (s *PaymentService) Attach(paymentID uint, boldTxID string) (*models.Payment, error) {
	p, err := s.paymentRepo.GetByID(paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if p.BoldTransactionID != nil {
		if *p.BoldTransactionID == boldTxID {
			return p, nil
		}
		return nil, ErrAlreadyAttached
	}
	if p.Status != domain.PaymentStatusPending {
		return nil, ErrPaymentNotPending
	}
	p.BoldTransactionID = &boldTxID
	if err := s.paymentRepo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Reconcile maps a Bold webhook outcome onto the payment and, when the
// result is completed, cascades the request to deposit_paid and stamps the
// transaction id on it. Already-completed payments are left untouched.
func (s *PaymentService) Reconcile(boldTxID, boldStatus string, amount int64) (*models.Payment, error) {
	p, err := s.paymentRepo.GetByBoldTransactionID(boldTxID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if p.Status == domain.PaymentStatusCompleted {
		return p, nil
	}

	internal := bold.MapStatus(boldStatus)
	p.Status = internal
	if internal == domain.PaymentStatusCompleted {
		now := time.Now()
		p.CompletedAt = &now
	}
	if err := s.paymentRepo.Update(p); err != nil {
		return nil, err
	}
	if internal != domain.PaymentStatusCompleted {
		return p, nil
	}

	req, err := s.requestRepo.GetByID(p.RequestID)
	if err != nil {
		return nil, err
	}
	if domain.CanTransition(req.Status, domain.RequestStatusDepositPaid) {
		req.Status = domain.RequestStatusDepositPaid
	} else if req.Status != domain.RequestStatusDepositPaid {
		// Late webhook against an already-advanced order; keep the
		// status but still record the transaction id.
		log.Printf("[payment] request %d at %s, not moving to deposit_paid", req.ID, req.Status)
	}
	req.PaymentID = boldTxID
	if err := s.requestRepo.Update(req); err != nil {
		return nil, err
	}

	if customer, err := s.customerRepo.GetByID(p.CustomerID); err == nil {
		if err := s.notifSvc.NotifyPaymentReceived(customer.FullName(), amount, p.RequestID); err != nil && !errors.Is(err, ErrNotifierDisabled) {
			log.Printf("[payment] payment notification failed: %v", err)
		}
	}
	return p, nil
}
