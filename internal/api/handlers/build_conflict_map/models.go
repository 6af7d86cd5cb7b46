package build_conflict_map

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	buildConflictMap "github.com/m04kA/SMC-DeskBooking/internal/usecase/build_conflict_map"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// ConflictMapResponse HTTP response model
type ConflictMapResponse struct {
	Conflicts          map[string]bool `json:"conflicts"`
	ConflictingDeskIDs []string        `json:"conflictingDeskIds"`
}

// ToUseCaseRequest разбирает query параметры:
// days=2026-06-11,2026-06-12&startTime=09:00&endTime=17:00&organizationId=..&locationId=..&spaceId=..
// Дни трактуются в часовом поясе loc.
func ToUseCaseRequest(userID string, q url.Values, loc *time.Location) (*buildConflictMap.Request, error) {
	req := &buildConflictMap.Request{UserID: userID}

	var err error
	if req.OrganizationID, err = handlers.QueryUUID(q, "organizationId"); err != nil {
		return nil, err
	}
	if req.LocationID, err = handlers.QueryUUID(q, "locationId"); err != nil {
		return nil, err
	}
	if req.SpaceID, err = handlers.QueryUUID(q, "spaceId"); err != nil {
		return nil, err
	}

	if raw := q.Get("days"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			day, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(part), loc)
			if err != nil {
				return nil, fmt.Errorf("invalid day %q: %w", part, err)
			}
			req.Days = append(req.Days, day)
		}
	}

	if raw := q.Get("startTime"); raw != "" {
		start, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, err
		}
		req.StartTime = &start
	}

	if raw := q.Get("endTime"); raw != "" {
		end, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, err
		}
		req.EndTime = &end
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *buildConflictMap.Response) *ConflictMapResponse {
	ids := buildConflictMap.ConflictingDeskIDs(resp.Conflicts)
	sort.Strings(ids)
	return &ConflictMapResponse{
		Conflicts:          resp.Conflicts,
		ConflictingDeskIDs: ids,
	}
}
