package router

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"puntadas/config"
	"puntadas/internal/database"
	"puntadas/internal/domain"
	"puntadas/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const webhookSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Env: "test"},
		JWT: config.JWTConfig{
			Secret: "test-jwt-secret",
			Expiry: time.Hour,
			Issuer: "puntadas",
		},
		Bold: config.BoldConfig{
			CheckoutBaseURL: "https://checkout.bold.co",
			APIKey:          "test-key",
			WebhookSecret:   webhookSecret,
		},
		Tracking: config.TrackingConfig{PublicBaseURL: "https://puntadas-de-mechis.com"},
	}
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))
	return Setup(testConfig(), db, nil, nil), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	}
	return w, out
}

func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Register → request → payment → attach → signed webhook → tracking: the
// whole customer journey through the HTTP surface.
func TestDepositFlow(t *testing.T) {
	r, db := newTestRouter(t)

	w, out := doJSON(t, r, http.MethodPost, "/api/v1/customers", gin.H{
		"first_name": "Test",
		"last_name":  "User",
		"email":      "test@example.com",
		"phone":      "3001234567",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Registro exitoso", out["message"])
	customerID := uint(out["customer"].(map[string]any)["id"].(float64))

	// Same email again comes back 409 with the existing customer attached.
	w, out = doJSON(t, r, http.MethodPost, "/api/v1/customers", gin.H{
		"first_name": "Test",
		"last_name":  "User",
		"email":      "test@example.com",
		"phone":      "3001234567",
	}, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Este correo ya está registrado", out["message"])
	assert.NotNil(t, out["customer"])

	w, out = doJSON(t, r, http.MethodPost, "/api/v1/requests", gin.H{
		"customer_id":    customerID,
		"description":    "Quiero un amigurumi de gato",
		"package_type":   domain.PackagePaperBag,
		"deposit_amount": 50000,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	request := out["request"].(map[string]any)
	requestID := uint(request["id"].(float64))
	trackingCode := request["tracking_code"].(string)
	assert.Equal(t, domain.RequestStatusPending, request["status"])
	assert.Len(t, trackingCode, 6)

	w, out = doJSON(t, r, http.MethodPost, "/api/v1/payments", gin.H{
		"request_id":  requestID,
		"customer_id": customerID,
		"amount":      50000,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, out["checkout_url"], fmt.Sprintf("AMIGURUMI-%d", requestID))
	paymentID := uint(out["payment"].(map[string]any)["id"].(float64))

	w, _ = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/payments/%d/attach", paymentID), gin.H{
		"bold_transaction_id": "bold-tx-e2e",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	payload, err := json.Marshal(gin.H{
		"id":        "bold-tx-e2e",
		"status":    "approved",
		"amount":    50000,
		"currency":  domain.CurrencyCOP,
		"reference": fmt.Sprintf("AMIGURUMI-%d", requestID),
	})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/bold", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Bold-Signature", sign(payload))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Request
	require.NoError(t, db.First(&updated, requestID).Error)
	assert.Equal(t, domain.RequestStatusDepositPaid, updated.Status)
	assert.Equal(t, "bold-tx-e2e", updated.PaymentID)

	// Public tracking lookup works without any auth.
	w, out = doJSON(t, r, http.MethodGet, "/api/v1/track/"+trackingCode, nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, domain.RequestStatusDepositPaid,
		out["request"].(map[string]any)["status"])
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	r, _ := newTestRouter(t)

	payload := []byte(`{"id":"bold-tx-x","status":"approved","amount":50000}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/bold", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Bold-Signature", "not-a-valid-signature")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookUnknownTransaction(t *testing.T) {
	r, _ := newTestRouter(t)

	payload := []byte(`{"id":"never-attached","status":"approved","amount":50000}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/bold", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Bold-Signature", sign(payload))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func seedTestAdmin(t *testing.T, db *gorm.DB, username, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.AdminCredential{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}).Error)
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	r, db := newTestRouter(t)
	seedTestAdmin(t, db, "mechis", "secret123", domain.RoleSuperAdmin)

	w, _ := doJSON(t, r, http.MethodGet, "/api/v1/admin/requests", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, out := doJSON(t, r, http.MethodPost, "/api/v1/admin/login", gin.H{
		"username": "mechis",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, out = doJSON(t, r, http.MethodPost, "/api/v1/admin/login", gin.H{
		"username": "mechis",
		"password": "secret123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token := out["token"].(string)
	require.NotEmpty(t, token)
	authz := map[string]string{"Authorization": "Bearer " + token}

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/admin/requests", nil, authz)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/admin/dashboard", nil, authz)
	assert.Equal(t, http.StatusOK, w.Code)

	w, out = doJSON(t, r, http.MethodPost, "/api/v1/admin/admins", gin.H{
		"username": "helper",
		"password": "secret123",
		"role":     domain.RoleAdmin,
	}, authz)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "helper", out["admin"].(map[string]any)["username"])
}

func TestAccountantRoleScope(t *testing.T) {
	r, db := newTestRouter(t)
	seedTestAdmin(t, db, "contadora", "secret123", domain.RoleAccountant)

	w, out := doJSON(t, r, http.MethodPost, "/api/v1/admin/login", gin.H{
		"username": "contadora",
		"password": "secret123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	authz := map[string]string{"Authorization": "Bearer " + out["token"].(string)}

	// The dashboard is readable, the order management surface is not.
	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/admin/dashboard", nil, authz)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/admin/requests", nil, authz)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCommunicationsThread(t *testing.T) {
	r, _ := newTestRouter(t)

	w, out := doJSON(t, r, http.MethodPost, "/api/v1/customers", gin.H{
		"first_name": "Ana",
		"last_name":  "Gómez",
		"email":      "ana@example.com",
		"phone":      "3009876543",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	customerID := uint(out["customer"].(map[string]any)["id"].(float64))

	w, out = doJSON(t, r, http.MethodPost, "/api/v1/requests", gin.H{
		"customer_id":    customerID,
		"description":    "Un pulpo morado con sombrero",
		"package_type":   domain.PackageChestBox,
		"deposit_amount": 80000,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	requestID := uint(out["request"].(map[string]any)["id"].(float64))

	messages := []gin.H{
		{"request_id": requestID, "customer_id": customerID, "sender_type": domain.SenderTypeCustomer, "message": "¿Cuándo estará listo?"},
		{"request_id": requestID, "customer_id": customerID, "sender_type": domain.SenderTypeAdmin, "message": "En dos semanas"},
		{"request_id": requestID, "customer_id": customerID, "sender_type": domain.SenderTypeCustomer, "message": "¡Perfecto, gracias!"},
	}
	for _, m := range messages {
		w, _ = doJSON(t, r, http.MethodPost, "/api/v1/communications", m, nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w, out = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/requests/%d/communications", requestID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	thread := out["communications"].([]any)
	require.Len(t, thread, 3)
	for i, m := range messages {
		got := thread[i].(map[string]any)
		assert.Equal(t, m["message"], got["message"])
		assert.Equal(t, m["sender_type"], got["sender_type"])
	}

	// A message against a nonexistent request is refused.
	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/communications", gin.H{
		"request_id": 9999, "customer_id": customerID, "sender_type": domain.SenderTypeCustomer, "message": "hola",
	}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompletionNotificationsReadable(t *testing.T) {
	r, db := newTestRouter(t)
	seedTestAdmin(t, db, "mechis", "secret123", domain.RoleAdmin)

	w, out := doJSON(t, r, http.MethodPost, "/api/v1/customers", gin.H{
		"first_name": "Luz",
		"last_name":  "Marín",
		"email":      "luz@example.com",
		"phone":      "3001112233",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	customerID := uint(out["customer"].(map[string]any)["id"].(float64))

	w, out = doJSON(t, r, http.MethodPost, "/api/v1/requests", gin.H{
		"customer_id":    customerID,
		"description":    "Un zorro naranja pequeño",
		"package_type":   domain.PackageWoodenBox,
		"deposit_amount": 50000,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	requestID := uint(out["request"].(map[string]any)["id"].(float64))

	// Nothing recorded until the order is marked ready.
	w, out = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/requests/%d/notifications", requestID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, out["notifications"])

	w, out = doJSON(t, r, http.MethodPost, "/api/v1/admin/login", gin.H{
		"username": "mechis",
		"password": "secret123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	authz := map[string]string{"Authorization": "Bearer " + out["token"].(string)}

	w, _ = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/admin/requests/%d/ready", requestID), gin.H{
		"customer_id": customerID,
	}, authz)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The completion notice is publicly readable, oldest first.
	w, out = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/requests/%d/notifications", requestID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	notices := out["notifications"].([]any)
	require.Len(t, notices, 1)
	assert.Equal(t, domain.CompletionMessage, notices[0].(map[string]any)["message"])
}

func TestPaymentsListedPerRequest(t *testing.T) {
	r, _ := newTestRouter(t)

	w, out := doJSON(t, r, http.MethodPost, "/api/v1/customers", gin.H{
		"first_name": "Sara",
		"last_name":  "Pardo",
		"email":      "sara@example.com",
		"phone":      "3014445566",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	customerID := uint(out["customer"].(map[string]any)["id"].(float64))

	w, out = doJSON(t, r, http.MethodPost, "/api/v1/requests", gin.H{
		"customer_id":    customerID,
		"description":    "Una ballena azul con corona",
		"package_type":   domain.PackageGlassDome,
		"deposit_amount": 100000,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	requestID := uint(out["request"].(map[string]any)["id"].(float64))

	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/payments", gin.H{
		"request_id":  requestID,
		"customer_id": customerID,
		"amount":      100000,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, out = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/requests/%d/payments", requestID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	payments := out["payments"].([]any)
	require.Len(t, payments, 1)
	got := payments[0].(map[string]any)
	assert.Equal(t, domain.PaymentStatusPending, got["status"])
	assert.Equal(t, fmt.Sprintf("AMIGURUMI-%d", requestID), got["reference"])
}

func TestReferralLookup(t *testing.T) {
	r, _ := newTestRouter(t)

	w, out := doJSON(t, r, http.MethodPost, "/api/v1/customers", gin.H{
		"first_name": "Nora",
		"last_name":  "Ruiz",
		"email":      "nora@example.com",
		"phone":      "3027778899",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	code := out["customer"].(map[string]any)["referral_code"].(string)
	require.NotEmpty(t, code)

	w, out = doJSON(t, r, http.MethodGet, "/api/v1/referrals/"+code, nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "nora@example.com", out["customer"].(map[string]any)["email"])

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/referrals/REF-0-NOPE", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
