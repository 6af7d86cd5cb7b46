package membershipservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с MembershipService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента MembershipService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetMemberships получает все членства пользователя в организациях.
// Пользователь без членств - не ошибка, возвращается пустой список.
func (c *Client) GetMemberships(ctx context.Context, userID string) ([]Membership, error) {
	endpoint := fmt.Sprintf("%s/internal/users/%s/memberships", c.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("MembershipService request failed for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		c.log.Info("No memberships found for user=%s", userID)
		return []Membership{}, nil
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid user ID format", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var memberships []Membership
	if err := json.NewDecoder(resp.Body).Decode(&memberships); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return memberships, nil
}

// GetMembershipInOrganization получает членство пользователя в конкретной организации
func (c *Client) GetMembershipInOrganization(ctx context.Context, userID, organizationID string) (*Membership, error) {
	memberships, err := c.GetMemberships(ctx, userID)
	if err != nil {
		return nil, err
	}

	membership, ok := FindByOrganization(memberships, organizationID)
	if !ok {
		return nil, ErrMembershipNotFound
	}

	return &membership, nil
}
