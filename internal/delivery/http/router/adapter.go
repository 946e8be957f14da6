package router

import (
	"encoding/json"

	"signup/internal/delivery/http/controller"
	"signup/internal/errors"

	"github.com/labstack/echo/v4"
)

// adaptRoute binds the JSON body into a controller request and writes the
// controller response back as JSON. A body that cannot be decoded is handed
// over as an empty request so the controller reports the first missing field.
// A value of the wrong type only blanks that field; the rest of the body
// decoded normally and is kept.
func adaptRoute(ctrl controller.Controller) echo.HandlerFunc {
	binder := &echo.DefaultBinder{}

	return func(c echo.Context) error {
		var body controller.SignUpRequest
		if err := binder.BindBody(c, &body); err != nil {
			if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
				return err
			}

			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				body = controller.SignUpRequest{}
			}
		}

		resp := ctrl.Handle(c.Request().Context(), controller.Request{Body: body})

		return c.JSON(resp.StatusCode, resp.Body)
	}
}
