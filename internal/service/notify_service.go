package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"nuvita/config"
	"nuvita/internal/models"
)

// NotifyService forwards contact-form submissions to the configured webhook
// (a Google Apps Script endpoint feeding a sheet). Best-effort: the caller
// fires it in a goroutine and a failure is logged, never surfaced to the
// visitor.
type NotifyService struct {
	cfg    *config.NotifyConfig
	client *http.Client
}

func NewNotifyService(cfg *config.NotifyConfig) *NotifyService {
	return &NotifyService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type contactPayload struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// SendContactNotification posts the inquiry to the webhook. No-op when no
// webhook is configured.
func (s *NotifyService) SendContactNotification(ctx context.Context, in *models.Inquiry) error {
	if s.cfg.ContactWebhookURL == "" {
		return nil
	}
	body, _ := json.Marshal(contactPayload{
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: in.CreatedAt.Format("2006-01-02 15:04:05"),
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.ContactWebhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("contact webhook returned %d", resp.StatusCode)
	}
	return nil
}

// NotifyAsync runs the webhook call off the request path.
func (s *NotifyService) NotifyAsync(in *models.Inquiry) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
		defer cancel()
		if err := s.SendContactNotification(ctx, in); err != nil {
			log.Printf("[notify] contact webhook failed: inquiry=%d err=%v", in.ID, err)
		}
	}()
}
