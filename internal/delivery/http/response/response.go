// Package response renders the wire format shared by every endpoint.
package response

import "github.com/labstack/echo/v4"

// Body is the single-field JSON body every endpoint returns. Keeping success
// and failure shapes identical means a failed login leaks nothing beyond its
// message.
type Body struct {
	Message string `json:"message"`
}

// Send writes the status code and message body.
func Send(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Body{Message: message})
}
