package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rfberaldo/sqlz"
)

type SubscriberServicer interface {
	Subscribe(email string) error
}

type SubscriberServiceConfig struct {
	DB *sqlz.DB
}

type SubscriberService struct {
	db *sqlz.DB
}

func NewSubscriberService(config SubscriberServiceConfig) SubscriberService {
	return SubscriberService{
		db: config.DB,
	}
}

/*
Subscribe records a newsletter signup. Subscribing twice with the same
address is a no-op, not an error.
*/
func (s SubscriberService) Subscribe(email string) error {
	sql := `
INSERT INTO subscribers (
   created_at
   , updated_at
   , email
) VALUES (CURRENT_TIMESTAMP, CURRENT_TIMESTAMP, ?)
ON CONFLICT (email) DO NOTHING
`

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if _, err := s.db.Exec(ctx, sql, email); err != nil {
		return fmt.Errorf("error adding subscriber '%s': %w", email, err)
	}

	return nil
}
