package membershipservice

// RoleAdmin роль администратора организации
const RoleAdmin = "admin"

// Membership членство пользователя в организации
type Membership struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	OrganizationID string `json:"organizationId"`
	Role           string `json:"role"`
}

// IsAdmin проверяет, что пользователь администрирует организацию
func (m Membership) IsAdmin() bool {
	return m.Role == RoleAdmin
}

// ErrorResponse модель ошибки от MembershipService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FindByOrganization возвращает членство в указанной организации
func FindByOrganization(memberships []Membership, organizationID string) (Membership, bool) {
	for _, m := range memberships {
		if m.OrganizationID == organizationID {
			return m, true
		}
	}
	return Membership{}, false
}
