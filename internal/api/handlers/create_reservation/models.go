package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	createReservation "github.com/m04kA/SMC-DeskBooking/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	DeskID    string   `json:"deskId"`
	Days      []string `json:"days"`      // ["2026-06-11", "2026-06-12"]
	StartTime string   `json:"startTime"` // "09:00"
	EndTime   string   `json:"endTime"`   // "17:00"
}

// TimeRangeResponse HTTP response model
type TimeRangeResponse struct {
	ID    string `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID             string              `json:"id"`
	UserID         string              `json:"userId"`
	MembershipID   string              `json:"membershipId"`
	OrganizationID string              `json:"organizationId"`
	LocationID     string              `json:"locationId"`
	SpaceID        string              `json:"spaceId"`
	DeskID         string              `json:"deskId"`
	TimeRanges     []TimeRangeResponse `json:"timeRanges"`
	CreatedAt      string              `json:"createdAt"`
	UpdatedAt      string              `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Дни трактуются в часовом поясе loc.
func (r *CreateReservationRequest) ToUseCaseRequest(userID string, loc *time.Location) (*createReservation.Request, error) {
	days := make([]time.Time, 0, len(r.Days))
	for _, raw := range r.Days {
		day, err := time.ParseInLocation(domain.DateFormat, raw, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q: %w", raw, err)
		}
		days = append(days, day)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:    userID,
		DeskID:    r.DeskID,
		Days:      days,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	ranges := make([]TimeRangeResponse, 0, len(resp.TimeRanges))
	for _, tr := range resp.TimeRanges {
		ranges = append(ranges, TimeRangeResponse{
			ID:    tr.ID,
			Start: tr.Start.Format(time.RFC3339),
			End:   tr.End.Format(time.RFC3339),
		})
	}

	return &ReservationResponse{
		ID:             resp.ID,
		UserID:         resp.UserID,
		MembershipID:   resp.MembershipID,
		OrganizationID: resp.OrganizationID,
		LocationID:     resp.LocationID,
		SpaceID:        resp.SpaceID,
		DeskID:         resp.DeskID,
		TimeRanges:     ranges,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
