// Package operations groups the back-office records tied to a model by
// convention (no enforced foreign keys): absences, payments, bookings,
// contact messages, fashion-day reservations and account recovery requests.
package operations

type Absence struct {
	ID        string `json:"id"`
	ModelID   string `json:"modelId"`
	ModelName string `json:"modelName"`
	Date      string `json:"date"`
	Reason    string `json:"reason"`
	Excused   bool   `json:"excused"`
}

type MonthlyPayment struct {
	ID        string  `json:"id"`
	ModelID   string  `json:"modelId"`
	ModelName string  `json:"modelName"`
	Month     string  `json:"month"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Status    string  `json:"status"`
	PaidAt    string  `json:"paidAt"`
}

type BookingRequest struct {
	ID          string `json:"id"`
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`
	ModelName   string `json:"modelName"`
	EventType   string `json:"eventType"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submittedAt"`
}

type ContactMessage struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
}

type FashionDayReservation struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Seats     int    `json:"seats"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

type RecoveryRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}
