package membership

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/integrations/membershipservice"
)

const keyPrefix = "desk-booking:memberships:"

// CachedClient кэширует членства пользователя на ttl.
// Ошибки кэша не пробрасываются: при недоступном Redis запрос идёт напрямую в Source.
type CachedClient struct {
	source Source
	store  Store
	ttl    time.Duration
	log    Logger
}

// NewCachedClient создает кэширующую обёртку над клиентом MembershipService
func NewCachedClient(source Source, store Store, ttl time.Duration, log Logger) *CachedClient {
	return &CachedClient{
		source: source,
		store:  store,
		ttl:    ttl,
		log:    log,
	}
}

// GetMemberships возвращает членства из кэша или из MembershipService
func (c *CachedClient) GetMemberships(ctx context.Context, userID string) ([]membershipservice.Membership, error) {
	key := keyPrefix + userID

	cached, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		var memberships []membershipservice.Membership
		if err := json.Unmarshal(cached, &memberships); err == nil {
			return memberships, nil
		}
		c.log.Warn("MembershipCache: corrupted entry for user=%s, refetching", userID)
	case !errors.Is(err, ErrCacheMiss):
		c.log.Warn("MembershipCache: get failed for user=%s: %v", userID, err)
	}

	memberships, err := c.source.GetMemberships(ctx, userID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(memberships)
	if err != nil {
		c.log.Warn("MembershipCache: failed to encode memberships for user=%s: %v", userID, err)
		return memberships, nil
	}
	if err := c.store.Set(ctx, key, payload, c.ttl); err != nil {
		c.log.Warn("MembershipCache: set failed for user=%s: %v", userID, err)
	}

	return memberships, nil
}

// GetMembershipInOrganization получает членство пользователя в конкретной организации
func (c *CachedClient) GetMembershipInOrganization(ctx context.Context, userID, organizationID string) (*membershipservice.Membership, error) {
	memberships, err := c.GetMemberships(ctx, userID)
	if err != nil {
		return nil, err
	}

	membership, ok := membershipservice.FindByOrganization(memberships, organizationID)
	if !ok {
		return nil, membershipservice.ErrMembershipNotFound
	}

	return &membership, nil
}
