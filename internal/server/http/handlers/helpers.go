package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/avolkov/clientbase/internal/domain/errors"
	"github.com/avolkov/clientbase/internal/domain/model"
	"github.com/avolkov/clientbase/internal/server/http/dto"
	"github.com/avolkov/clientbase/internal/server/http/middleware"
)

// CurrentUser extracts the authenticated user from the request context.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.CurrentUserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

func respondMessage(c *gin.Context, status int, code, message string) {
	c.JSON(status, dto.CommonResponse{Status: status, Code: code, Message: message})
}

// respondError normalizes domain errors to the common envelope. Anything
// unrecognized becomes a 500 without detail.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrEmailExists):
		respondMessage(c, http.StatusConflict, "DUPLICATE_EMAIL", "Email address provided is already registered with an account")
	case errors.Is(err, domainErrors.ErrPhoneExists):
		respondMessage(c, http.StatusConflict, "DUPLICATE_PHONE", "Phone number provided is already registered with an account")
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		respondMessage(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is wrong")
	case errors.Is(err, domainErrors.ErrNotFound):
		respondMessage(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, domainErrors.ErrInvalidSearchField):
		respondMessage(c, http.StatusBadRequest, "INVALID_SEARCH_FIELD", "Invalid searchBy parameter")
	case errors.Is(err, domainErrors.ErrRemoteImport):
		respondMessage(c, http.StatusBadGateway, "REMOTE_IMPORT_FAILED", "Remote import failed")
	default:
		respondMessage(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
