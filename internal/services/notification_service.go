package services

import (
	"context"
	"fmt"
	"log"

	"firebase.google.com/go/messaging"

	"github.com/dinakar-24/sse-pay/internal/repositories"
)

// NotificationService pushes payment confirmations to a student's
// registered devices through FCM. All sends are best-effort; a push failure
// never fails the payment flow.
type NotificationService struct {
	Client    *messaging.Client
	TokenRepo *repositories.DeviceTokenRepository
	InfoLog   *log.Logger
	ErrorLog  *log.Logger
}

func (s *NotificationService) PaymentVerified(ctx context.Context, studentID, dueID string, amount float64) {
	if s == nil || s.Client == nil {
		return
	}
	tokens, err := s.TokenRepo.GetTokensByStudent(ctx, studentID)
	if err != nil {
		if s.ErrorLog != nil {
			s.ErrorLog.Printf("load device tokens for %s: %v", studentID, err)
		}
		return
	}

	for _, token := range tokens {
		msg := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: "Payment received",
				Body:  fmt.Sprintf("Your payment of ₹%.2f was verified successfully.", amount),
			},
			Data: map[string]string{
				"assignment_id": dueID,
			},
			Android: &messaging.AndroidConfig{
				Priority: "high",
			},
			APNS: &messaging.APNSConfig{
				Headers: map[string]string{
					"apns-priority": "10",
				},
			},
		}
		if _, err := s.Client.Send(ctx, msg); err != nil {
			if s.ErrorLog != nil {
				s.ErrorLog.Printf("push to student %s failed: %v", studentID, err)
			}
			continue
		}
		if s.InfoLog != nil {
			s.InfoLog.Printf("payment push sent to student %s", studentID)
		}
	}
}

func (s *NotificationService) RegisterToken(ctx context.Context, studentID, token string) error {
	return s.TokenRepo.SaveToken(ctx, studentID, token)
}

func (s *NotificationService) RemoveToken(ctx context.Context, studentID, token string) error {
	return s.TokenRepo.DeleteToken(ctx, studentID, token)
}
