package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"puntadas/config"
)

var ErrNotifierDisabled = errors.New("owner notifications disabled")

// NotificationService forwards formatted event text to the owner
// notification channel. Dispatch is best-effort: callers log failures and
// move on, they never roll back the triggering operation.
type NotificationService struct {
	webhookURL string
	client     *http.Client
}

func NewNotificationService(cfg *config.NotifyConfig) *NotificationService {
	return &NotificationService{
		webhookURL: cfg.WebhookURL,
		client:     &http.Client{Timeout: cfg.Timeout},
	}
}

func (s *NotificationService) Notify(title, content string) error {
	if s == nil || s.webhookURL == "" {
		return ErrNotifierDisabled
	}
	body, _ := json.Marshal(map[string]string{
		"title":   title,
		"content": content,
	})
	resp, err := s.client.Post(s.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("notify webhook returned %d", resp.StatusCode)
	}
	return nil
}

func (s *NotificationService) NotifyNewRequest(customerName, email, phone, packageLabel, description string) error {
	content := fmt.Sprintf(`Nueva solicitud de amigurumi recibida:

**Cliente:** %s
**Email:** %s
**Teléfono:** %s
**Tipo de Empaque:** %s
**Descripción:** %s

Por favor, accede al panel de administración para gestionar esta solicitud.`,
		customerName, email, phone, packageLabel, description)
	return s.Notify("Nueva Solicitud de Amigurumi", content)
}

func (s *NotificationService) NotifyPaymentReceived(customerName string, amount int64, requestID uint) error {
	content := fmt.Sprintf(`Pago/Abono recibido:

**Cliente:** %s
**Monto:** $%d
**ID de Solicitud:** %d

El cliente ha realizado el pago. Por favor, procede con la solicitud.`,
		customerName, amount/100, requestID)
	return s.Notify("Pago Recibido", content)
}

// NotifyOrderReady tells the owner a completion notice was generated.
func (s *NotificationService) NotifyOrderReady(customerName string, requestID uint) error {
	content := fmt.Sprintf(`El amigurumi de %s (solicitud %d) está marcado como listo para entrega.`,
		customerName, requestID)
	return s.Notify("Amigurumi Listo", content)
}
