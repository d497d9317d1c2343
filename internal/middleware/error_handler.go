package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as JSON. Unknown API routes answer with
// the Spanish bodies the client expects; anything uncaught maps to a
// generic 500 so internals never leak out.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	path := c.Request().URL.Path

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code >= http.StatusInternalServerError {
		log.Printf("[HTTP] unhandled error on %s: %v", path, err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Error interno del servidor",
		})
		return
	}

	if he.Code == http.StatusNotFound && strings.HasPrefix(path, "/api") && he.Message == http.StatusText(http.StatusNotFound) {
		_ = c.JSON(http.StatusNotFound, map[string]string{
			"error": "Ruta no encontrada",
			"path":  path,
		})
		return
	}

	msg := http.StatusText(he.Code)
	if m, ok := he.Message.(string); ok {
		msg = m
	}
	_ = c.JSON(he.Code, map[string]string{"error": msg})
}
