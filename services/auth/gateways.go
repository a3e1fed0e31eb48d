package auth

import "context"

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/vndocs/authcore/services/auth MailGW

// MailGW is the outbound mail collaborator used to deliver OTP codes.
type MailGW interface {
	Send(ctx context.Context, to, subject, body string) error
}
