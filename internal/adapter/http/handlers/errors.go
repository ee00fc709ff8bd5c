package handlers

import (
	"errors"
	"log"
	"net/http"

	"catrental/internal/adapter/http/middleware"
	"catrental/internal/domain/entities"
	"catrental/internal/usecase"
	"catrental/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errMissingCaller  = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Missing or invalid bearer token", http.StatusUnauthorized)
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errForbidden      = pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed for this role", http.StatusForbidden)
)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		log.Printf("[http][handler] %s %s code=%s err=%v", c.Request.Method, c.FullPath(), appErr.Code, appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// requireCaller writes a 401 and reports false when no caller was attached
// by the auth middleware.
func requireCaller(c *gin.Context) (entities.Caller, bool) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		respondError(c, errMissingCaller)
		return entities.Caller{}, false
	}
	return caller, true
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func mapForbidden(err error) (*pkg.AppError, bool) {
	if errors.Is(err, usecase.ErrForbidden) {
		return errForbidden, true
	}
	return nil, false
}
