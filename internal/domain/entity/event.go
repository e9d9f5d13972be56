package entity

import "time"

type EventType string

const (
	EventServiceRequestCreated  EventType = "service_request.created"
	EventCustomerReplyProcessed EventType = "customer_reply.processed"
)

// LifecycleEvent is published when a request changes state.
type LifecycleEvent struct {
	Type          EventType     `json:"type"`
	SINumber      string        `json:"si_number"`
	CustomerEmail string        `json:"customer_email"`
	Status        RequestStatus `json:"status"`
	OptionsFound  int           `json:"options_found"`
	At            time.Time     `json:"at"`
}
