package controller

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "signup/internal/delivery/context"
	domainerrors "signup/internal/domain/errors"
	"signup/internal/domain/service"
	"signup/internal/usecase"

	"go.uber.org/fx"
)

// SignUpControllerParams holds dependencies for SignUpController, injected by Fx.
type SignUpControllerParams struct {
	fx.In

	EmailValidator service.EmailValidator
	AddAccount     usecase.AddAccount
	Logger         *slog.Logger
}

// SignUpController validates a signup request and hands it to the use case.
type SignUpController struct {
	emailValidator service.EmailValidator
	addAccount     usecase.AddAccount
	logger         *slog.Logger
}

// NewSignUpController creates a new SignUpController.
func NewSignUpController(params SignUpControllerParams) *SignUpController {
	return &SignUpController{
		emailValidator: params.EmailValidator,
		addAccount:     params.AddAccount,
		logger:         params.Logger,
	}
}

type requiredField struct {
	name  string
	value string
}

// Handle runs the checks in a fixed order and stops at the first failure:
// required fields, password confirmation, email syntax, then account creation.
func (ctrl *SignUpController) Handle(ctx context.Context, req Request) (resp Response) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, ctrl.logger)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Signup panicked", slog.String("panic", fmt.Sprint(r)))
			resp = serverError()
		}
	}()

	body := req.Body
	required := []requiredField{
		{name: "name", value: body.Name},
		{name: "email", value: body.Email},
		{name: "password", value: body.Password},
		{name: "passwordConfirmation", value: body.PasswordConfirmation},
	}
	for _, field := range required {
		if field.value == "" {
			return badRequest(domainerrors.NewMissingParamError(field.name))
		}
	}

	if body.Password != body.PasswordConfirmation {
		return badRequest(domainerrors.NewInvalidParamError("passwordConfirmation"))
	}

	valid, err := ctrl.emailValidator.IsValid(body.Email)
	if err != nil {
		logger.Error("Email validation failed", slog.Any("error", err))

		return serverError()
	}
	if !valid {
		return badRequest(domainerrors.NewInvalidParamError("email"))
	}

	account, err := ctrl.addAccount.Add(ctx, usecase.AddAccountInput{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		logger.Error("Failed to add account", slog.Any("error", err))

		return serverError()
	}

	return ok(account)
}
