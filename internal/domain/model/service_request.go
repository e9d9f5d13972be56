package model

import (
	"time"

	"github.com/winning-appliances/service-automation/internal/domain/entity"
)

// ServiceRequest represents a service_requests row
type ServiceRequest struct {
	ID                int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SINumber          string    `gorm:"column:si_number;size:50;not null;uniqueIndex:idx_si_number" json:"si_number"`
	CustomerName      string    `gorm:"size:255" json:"customer_name"`
	CustomerEmail     string    `gorm:"size:255;not null;index:idx_customer_email" json:"customer_email"`
	CustomerPhone     string    `gorm:"size:50" json:"customer_phone"`
	CustomerAddress   string    `gorm:"type:text" json:"customer_address"`
	SKU               string    `gorm:"column:sku;size:100;not null" json:"sku"`
	ShipmentDate      string    `gorm:"size:50" json:"shipment_date"`
	AssignedUserEmail string    `gorm:"size:255;not null" json:"assigned_user_email"`
	Status            string    `gorm:"size:50;not null;default:'waiting_customer'" json:"status"`
	CreatedAt         time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt         time.Time `gorm:"default:now()" json:"updated_at"`

	Responses []CustomerResponse `gorm:"foreignKey:ServiceRequestID" json:"responses,omitempty"`
}

// TableName specifies the table name for GORM
func (ServiceRequest) TableName() string {
	return "service_requests"
}

func (m *ServiceRequest) ToEntity() *entity.ServiceRequest {
	return &entity.ServiceRequest{
		ID:                m.ID,
		SINumber:          m.SINumber,
		CustomerName:      m.CustomerName,
		CustomerEmail:     m.CustomerEmail,
		CustomerPhone:     m.CustomerPhone,
		CustomerAddress:   m.CustomerAddress,
		SKU:               m.SKU,
		ShipmentDate:      m.ShipmentDate,
		AssignedUserEmail: m.AssignedUserEmail,
		Status:            entity.RequestStatus(m.Status),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func ServiceRequestFromEntity(e *entity.ServiceRequest) *ServiceRequest {
	return &ServiceRequest{
		ID:                e.ID,
		SINumber:          e.SINumber,
		CustomerName:      e.CustomerName,
		CustomerEmail:     e.CustomerEmail,
		CustomerPhone:     e.CustomerPhone,
		CustomerAddress:   e.CustomerAddress,
		SKU:               e.SKU,
		ShipmentDate:      e.ShipmentDate,
		AssignedUserEmail: e.AssignedUserEmail,
		Status:            string(e.Status),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

// CustomerResponse represents a customer_responses row
type CustomerResponse struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ServiceRequestID   int64     `gorm:"not null;index:idx_service_request_id" json:"service_request_id"`
	SerialNumber       string    `gorm:"size:100" json:"serial_number"`
	ProblemDescription string    `gorm:"type:text" json:"problem_description"`
	WarrantyStatus     string    `gorm:"size:50" json:"warranty_status"`
	ReceivedAt         time.Time `gorm:"default:now()" json:"received_at"`
}

// TableName specifies the table name for GORM
func (CustomerResponse) TableName() string {
	return "customer_responses"
}

func CustomerResponseFromEntity(e *entity.CustomerResponse) *CustomerResponse {
	return &CustomerResponse{
		ID:                 e.ID,
		ServiceRequestID:   e.ServiceRequestID,
		SerialNumber:       e.SerialNumber,
		ProblemDescription: e.ProblemDescription,
		WarrantyStatus:     e.WarrantyStatus,
		ReceivedAt:         e.ReceivedAt,
	}
}
