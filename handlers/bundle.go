package handlers

import (
	"firebase.google.com/go/v4/auth"
	"github.com/hibiken/asynq"
)

// HandlerBundle groups the handler sets so route registration takes a
// single dependency instead of a long parameter list.
type HandlerBundle struct {
	Providers  *ProviderHandler
	Chambers   *ChamberHandler
	Content    *ContentHandler
	Users      *UserHandler
	Media      *MediaHandler
	AuthClient *auth.Client
	JobClient  *asynq.Client
}
