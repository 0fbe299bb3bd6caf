package services

import (
	"context"
	"fmt"
	"time"

	"github.com/llpevents/website/pkg/models"
	"github.com/rfberaldo/sqlz"
)

type ContactServicer interface {
	RecordMessage(message models.ContactMessage) error
}

type ContactServiceConfig struct {
	DB *sqlz.DB
}

/*
ContactService keeps a local log of contact form submissions so a
dropped notification email doesn't lose the message.
*/
type ContactService struct {
	db *sqlz.DB
}

func NewContactService(config ContactServiceConfig) ContactService {
	return ContactService{
		db: config.DB,
	}
}

func (s ContactService) RecordMessage(message models.ContactMessage) error {
	sql := `
INSERT INTO contact_messages (
   created_at
   , updated_at
   , name
   , email
   , message
) VALUES (CURRENT_TIMESTAMP, CURRENT_TIMESTAMP, ?, ?, ?)
`

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if _, err := s.db.Exec(ctx, sql, message.Name, message.Email, message.Message); err != nil {
		return fmt.Errorf("error recording contact message from '%s': %w", message.Email, err)
	}

	return nil
}
