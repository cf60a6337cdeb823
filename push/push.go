// Package push sends web-push notifications for engagement events. Sends
// are best-effort: failures are logged and never surfaced to the caller.
package push

import (
	"context"
	"encoding/json"
	"time"

	"espora/logger"
	"espora/store"

	"github.com/SherClockHolmes/webpush-go"
)

type Sender struct {
	store      store.Store
	subscriber string
	publicKey  string
	privateKey string
}

func NewSender(s store.Store, subscriber, publicKey, privateKey string) *Sender {
	return &Sender{
		store:      s,
		subscriber: subscriber,
		publicKey:  publicKey,
		privateKey: privateKey,
	}
}

type payload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Notify fans the message out to every subscription the user registered.
// Runs inline with a short timeout; callers treat it as fire-and-forget.
func (s *Sender) Notify(ctx context.Context, userID, title, body string) {
	if s.privateKey == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	subs, err := s.store.ListPushSubs(ctx, userID)
	if err != nil {
		logger.Log.WithError(err).WithField("userId", userID).Warn("push subscription lookup failed")
		return
	}

	data, err := json.Marshal(payload{Title: title, Body: body})
	if err != nil {
		return
	}

	for _, sub := range subs {
		resp, err := webpush.SendNotification(data, &sub.Sub, &webpush.Options{
			Subscriber:      s.subscriber,
			VAPIDPublicKey:  s.publicKey,
			VAPIDPrivateKey: s.privateKey,
			TTL:             60,
		})
		if err != nil {
			logger.Log.WithError(err).WithField("userId", userID).Warn("push send failed")
			continue
		}
		resp.Body.Close()
	}
}
