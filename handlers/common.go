package handlers

import (
	"context"

	"espora/comments"
	"espora/engagement"
	"espora/feed"
	"espora/push"
	"espora/social"
	"espora/storage"
	"espora/store"
)

// Collaborators shared across all handler files, injected once at startup.
var (
	docs      store.Store
	uploads   storage.Uploader
	assembler *feed.Assembler
	engage    *engagement.Service
	coments   *comments.Service
	follows   *social.Service
)

// notifier adapts the optional push sender to the service notifier
// interfaces so a nil sender stays a true no-op.
type notifier struct{ sender *push.Sender }

func (n notifier) Notify(ctx context.Context, userID, title, body string) {
	if n.sender != nil {
		n.sender.Notify(ctx, userID, title, body)
	}
}

// Init wires the handler package. Call before registering routes.
func Init(s store.Store, up storage.Uploader, p *push.Sender) {
	docs = s
	uploads = up
	n := notifier{sender: p}
	assembler = feed.NewAssembler(s)
	engage = engagement.NewService(s)
	coments = comments.NewService(s, n)
	follows = social.NewService(s, n)
}
