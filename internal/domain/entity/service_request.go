package entity

import "time"

type ServiceRequest struct {
	ID                int64         `json:"id"`
	SINumber          string        `json:"si_number"`
	CustomerName      string        `json:"customer_name"`
	CustomerEmail     string        `json:"customer_email"`
	CustomerPhone     string        `json:"customer_phone"`
	CustomerAddress   string        `json:"customer_address"`
	SKU               string        `json:"sku"`
	ShipmentDate      string        `json:"shipment_date"`
	AssignedUserEmail string        `json:"assigned_user_email"`
	Status            RequestStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// RequestStatus moves forward only: waiting_customer -> options_sent.
type RequestStatus string

const (
	RequestStatusWaitingCustomer RequestStatus = "waiting_customer"
	RequestStatusOptionsSent     RequestStatus = "options_sent"
)

type CustomerResponse struct {
	ID                 int64     `json:"id"`
	ServiceRequestID   int64     `json:"service_request_id"`
	SerialNumber       string    `json:"serial_number"`
	ProblemDescription string    `json:"problem_description"`
	WarrantyStatus     string    `json:"warranty_status"`
	ReceivedAt         time.Time `json:"received_at"`
}
