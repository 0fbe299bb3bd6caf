package mailerapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/llpevents/website/cmd/website/internal/api"
	"github.com/llpevents/website/pkg/models"
	"github.com/llpevents/website/pkg/services"
)

const (
	minMessageLength = 10
	maxMessageLength = 5000
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type MailerHandlers interface {
	ContactAction(w http.ResponseWriter, r *http.Request)
	SubscribeAction(w http.ResponseWriter, r *http.Request)
	Preflight(w http.ResponseWriter, r *http.Request)
}

type MailerControllerConfig struct {
	ContactService    services.ContactServicer
	MailService       services.MailServicer
	SubscriberService services.SubscriberServicer
	Turnstile         services.TurnstileVerifier
	EmailApiKey       string
	TurnstileSecret   string
}

type MailerController struct {
	contactService    services.ContactServicer
	mailService       services.MailServicer
	subscriberService services.SubscriberServicer
	turnstile         services.TurnstileVerifier
	emailApiKey       string
	turnstileSecret   string
}

func NewMailerController(config MailerControllerConfig) MailerController {
	return MailerController{
		contactService:    config.ContactService,
		mailService:       config.MailService,
		subscriberService: config.SubscriberService,
		turnstile:         config.Turnstile,
		emailApiKey:       config.EmailApiKey,
		turnstileSecret:   config.TurnstileSecret,
	}
}

type contactRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Message        string `json:"message"`
	TurnstileToken string `json:"turnstileToken"`
}

type subscribeRequest struct {
	Email string `json:"email"`
}

/*
POST /api/contact
*/
func (c MailerController) ContactAction(w http.ResponseWriter, r *http.Request) {
	writeCorsHeaders(w)

	request := contactRequest{}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if request.Name == "" || request.Email == "" || request.Message == "" || request.TurnstileToken == "" {
		api.WriteError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	if !emailPattern.MatchString(request.Email) {
		api.WriteError(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	if len(request.Message) < minMessageLength {
		api.WriteError(w, http.StatusBadRequest, "Message must be at least 10 characters")
		return
	}

	if len(request.Message) > maxMessageLength {
		api.WriteError(w, http.StatusBadRequest, "Message is too long (max 5000 characters)")
		return
	}

	if c.emailApiKey == "" || c.turnstileSecret == "" {
		slog.Error("contact form is missing email or turnstile credentials")
		api.WriteError(w, http.StatusInternalServerError, "Server configuration error. Please contact support.")
		return
	}

	verified, err := c.turnstile.Verify(r.Context(), request.TurnstileToken)

	if err != nil {
		slog.Error("error verifying turnstile token", "error", err)
		api.WriteErrorDetail(w, http.StatusInternalServerError, "An error occurred. Please try again.", err.Error())
		return
	}

	if !verified {
		api.WriteError(w, http.StatusBadRequest, "Verification failed. Please try again.")
		return
	}

	message := models.ContactMessage{
		Name:    request.Name,
		Email:   request.Email,
		Message: request.Message,
	}

	if err = c.mailService.SendContactNotification(message); err != nil {
		slog.Error("error sending contact notification email", "error", err, "from", request.Email)
		api.WriteErrorDetail(w, http.StatusInternalServerError, "Failed to send message. Please try again.", err.Error())
		return
	}

	if err = c.contactService.RecordMessage(message); err != nil {
		// The email already went out; losing the local log row is not fatal.
		slog.Error("error recording contact message", "error", err, "from", request.Email)
	}

	api.WriteJson(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Message sent successfully!",
	})
}

/*
POST /api/subscribe
*/
func (c MailerController) SubscribeAction(w http.ResponseWriter, r *http.Request) {
	writeCorsHeaders(w)

	request := subscribeRequest{}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !emailPattern.MatchString(request.Email) {
		api.WriteError(w, http.StatusBadRequest, "Valid email is required")
		return
	}

	if c.emailApiKey == "" {
		slog.Error("subscribe form is missing email credentials")
		api.WriteError(w, http.StatusInternalServerError, "Server configuration error. Please contact support.")
		return
	}

	if err := c.subscriberService.Subscribe(request.Email); err != nil {
		slog.Error("error storing subscriber", "error", err, "email", request.Email)
		api.WriteErrorDetail(w, http.StatusInternalServerError, "Failed to subscribe. Please try again.", err.Error())
		return
	}

	if err := c.mailService.SendWelcome(request.Email); err != nil {
		slog.Error("error sending welcome email", "error", err, "email", request.Email)
		api.WriteErrorDetail(w, http.StatusInternalServerError, "Failed to subscribe. Please try again.", err.Error())
		return
	}

	api.WriteJson(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Welcome to LLP Events!",
	})
}

/*
OPTIONS /api/contact and /api/subscribe
*/
func (c MailerController) Preflight(w http.ResponseWriter, r *http.Request) {
	writeCorsHeaders(w)
	w.WriteHeader(http.StatusOK)
}

func writeCorsHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}
