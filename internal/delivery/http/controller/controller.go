package controller

import "context"

// Controller is implemented by every transport-independent handler.
type Controller interface {
	Handle(ctx context.Context, req Request) Response
}
