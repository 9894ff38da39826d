package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Client - клиент агентства (владелец или потенциальный арендатор).
type Client struct {
	ID         uuid.UUID
	Surname    *string
	Name       *string
	Patronymic *string
	Phone      *string
	Email      *string
}

// Validate требует хотя бы один способ связи и минимально
// осмысленный email.
func (c *Client) Validate() error {
	phone := trimPtr(c.Phone)
	email := trimPtr(c.Email)
	if phone == "" && email == "" {
		return ErrClientContactRequired
	}
	if email != "" && !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

func trimPtr(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
