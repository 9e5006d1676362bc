package domain

// Request lifecycle. Forward-only along this order; cancellation is
// reachable from any non-terminal state.
const (
	RequestStatusPending     = "pending"
	RequestStatusDepositPaid = "deposit_paid"
	RequestStatusInProgress  = "in_progress"
	RequestStatusCompleted   = "completed"
	RequestStatusCancelled   = "cancelled"
)

// RequestTransitions is the allowed-transition table for request statuses.
// The terminal states completed and cancelled have no outgoing edges.
var RequestTransitions = map[string][]string{
	RequestStatusPending:     {RequestStatusDepositPaid, RequestStatusCancelled},
	RequestStatusDepositPaid: {RequestStatusInProgress, RequestStatusCancelled},
	RequestStatusInProgress:  {RequestStatusCompleted, RequestStatusCancelled},
}

// CanTransition reports whether a request may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range RequestTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Production tracking states, independent from the request status enum.
const (
	TrackingStatusCreated      = "created"
	TrackingStatusInProduction = "in_production"
	TrackingStatusReady        = "ready"
	TrackingStatusShipped      = "shipped"
	TrackingStatusDelivered    = "delivered"
)

// TrackingOrder defines the forward-only progression of the QR tracking
// state machine.
var TrackingOrder = []string{
	TrackingStatusCreated,
	TrackingStatusInProduction,
	TrackingStatusReady,
	TrackingStatusShipped,
	TrackingStatusDelivered,
}

func TrackingStep(status string) int {
	for i, s := range TrackingOrder {
		if s == status {
			return i
		}
	}
	return -1
}

const (
	SenderTypeCustomer = "customer"
	SenderTypeAdmin    = "admin"
)

const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
)

const (
	DeliveryStatusPending = "pending"
	DeliveryStatusSent    = "sent"
	DeliveryStatusFailed  = "failed"
)

const (
	PackageWoodenBox = "wooden_box"
	PackagePaperBag  = "paper_bag"
	PackageChestBox  = "chest_box"
	PackageGlassDome = "glass_dome"
)

// PackageLabels carries the display names used in owner notifications.
var PackageLabels = map[string]string{
	PackageWoodenBox: "Caja de Madera",
	PackagePaperBag:  "Bolsa de Papel",
	PackageChestBox:  "Caja Cofre",
	PackageGlassDome: "Cúpula de Vidrio",
}

func ValidPackageType(t string) bool {
	_, ok := PackageLabels[t]
	return ok
}

// MinDepositCents is the server-side floor for deposits, in COP cents.
// The UI offers fixed tiers (50000/100000/150000/200000) but the server
// accepts any amount at or above the floor.
const MinDepositCents = 1000

const CurrencyCOP = "COP"

// CompletionMessage is the fixed customer-facing text recorded when an
// order is marked ready.
const CompletionMessage = "¡Tu amigurumi está listo! Contáctanos para coordinar la entrega."
