package models

import (
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
)

// UpdateSettingsRequest запрос на изменение настроек организации
type UpdateSettingsRequest struct {
	UserID   string `json:"-"`
	Cleaning *bool  `json:"cleaning"`
}

// SettingsResponse настройки организации
type SettingsResponse struct {
	OrganizationID        string    `json:"organizationId"`
	Name                  string    `json:"name"`
	Cleaning              bool      `json:"cleaning"`
	CleaningBufferMinutes int       `json:"cleaningBufferMinutes"`
	SubscriptionFailed    bool      `json:"subscriptionFailed"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// FromDomainOrganization конвертирует domain модель в response
func FromDomainOrganization(org *domain.Organization) *SettingsResponse {
	if org == nil {
		return nil
	}

	return &SettingsResponse{
		OrganizationID:        org.ID,
		Name:                  org.Name,
		Cleaning:              org.Cleaning,
		CleaningBufferMinutes: int(org.CleaningBuffer().Minutes()),
		SubscriptionFailed:    org.SubscriptionFailed,
		UpdatedAt:             org.UpdatedAt,
	}
}
