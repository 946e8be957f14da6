// Package controller holds the transport-independent request handlers.
package controller

import (
	"net/http"

	domainerrors "signup/internal/domain/errors"
)

// Request is what the transport hands to a controller.
type Request struct {
	Body SignUpRequest
}

// Response is what a controller hands back to the transport.
type Response struct {
	StatusCode int
	Body       any
}

// SignUpRequest is the body of POST /api/signup.
type SignUpRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

func ok(body any) Response {
	return Response{StatusCode: http.StatusOK, Body: body}
}

func badRequest(err *domainerrors.BaseError) Response {
	return Response{StatusCode: err.HTTPCode(), Body: err.Body()}
}

func serverError() Response {
	return Response{
		StatusCode: domainerrors.ErrServerError.HTTPCode(),
		Body:       domainerrors.ErrServerError.Body(),
	}
}
