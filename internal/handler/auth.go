package handler

import (
	"net/http"

	"jobflow/internal/middleware"
	"jobflow/internal/model"
	"jobflow/internal/store"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	store *store.Store
}

func NewAuthHandler(st *store.Store) *AuthHandler { return &AuthHandler{store: st} }

// GET /api/auth/user
// Upserts the user row from the validated token claims and returns it, so
// profile changes at the provider propagate on the next request.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	claims, ok := c.MustGet(middleware.CtxClaims).(model.AuthClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.store.UpsertUser(c.Request.Context(), model.User{
		ID:              claims.Sub,
		Email:           claims.Email,
		FirstName:       claims.FirstName,
		LastName:        claims.LastName,
		ProfileImageURL: claims.ProfileImageURL,
	})
	if err != nil {
		fail(c, err, "fetch user")
		return
	}
	c.JSON(http.StatusOK, user)
}
