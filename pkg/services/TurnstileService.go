package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const turnstileVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

type TurnstileVerifier interface {
	Verify(ctx context.Context, token string) (bool, error)
}

type TurnstileServiceConfig struct {
	SecretKey string
}

/*
TurnstileService checks bot-verification tokens against Cloudflare's
siteverify endpoint. A failed verification is not an error; the bool
result distinguishes "the token is bad" from "we couldn't ask".
*/
type TurnstileService struct {
	httpClient *http.Client
	secretKey  string
}

func NewTurnstileService(config TurnstileServiceConfig) TurnstileService {
	return TurnstileService{
		httpClient: &http.Client{Timeout: time.Second * 10},
		secretKey:  config.SecretKey,
	}
}

func (s TurnstileService) Verify(ctx context.Context, token string) (bool, error) {
	payload, _ := json.Marshal(map[string]string{
		"secret":   s.secretKey,
		"response": token,
	})

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, turnstileVerifyURL, bytes.NewReader(payload))

	if err != nil {
		return false, fmt.Errorf("error creating turnstile verification request: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")

	response, err := s.httpClient.Do(request)

	if err != nil {
		return false, fmt.Errorf("error calling turnstile verification: %w", err)
	}

	defer response.Body.Close()

	result := struct {
		Success bool `json:"success"`
	}{}

	if err = json.NewDecoder(response.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("error decoding turnstile verification response: %w", err)
	}

	return result.Success, nil
}
