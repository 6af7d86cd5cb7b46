package auto_forward

import (
	"net/url"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	autoForward "github.com/m04kA/SMC-DeskBooking/internal/usecase/auto_forward"
)

// SelectionResponse HTTP response model
type SelectionResponse struct {
	OrganizationID *string `json:"organizationId"`
	LocationID     *string `json:"locationId"`
	SpaceID        *string `json:"spaceId"`
	DeskID         *string `json:"deskId"`
	BillingHalted  bool    `json:"billingHalted"`
}

// ToUseCaseRequest собирает текущий выбор из query параметров
func ToUseCaseRequest(userID string, q url.Values) (*autoForward.Request, error) {
	var (
		selection domain.Selection
		err       error
	)
	if selection.OrganizationID, err = handlers.QueryUUID(q, "organizationId"); err != nil {
		return nil, err
	}
	if selection.LocationID, err = handlers.QueryUUID(q, "locationId"); err != nil {
		return nil, err
	}
	if selection.SpaceID, err = handlers.QueryUUID(q, "spaceId"); err != nil {
		return nil, err
	}
	if selection.DeskID, err = handlers.QueryUUID(q, "deskId"); err != nil {
		return nil, err
	}

	return &autoForward.Request{UserID: userID, Selection: selection}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *autoForward.Response) *SelectionResponse {
	return &SelectionResponse{
		OrganizationID: resp.Selection.OrganizationID,
		LocationID:     resp.Selection.LocationID,
		SpaceID:        resp.Selection.SpaceID,
		DeskID:         resp.Selection.DeskID,
		BillingHalted:  resp.BillingHalted,
	}
}
