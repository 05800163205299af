package handler

import (
	"encoding/json"
	"net/http"

	"jobflow/internal/model"
	"jobflow/internal/store"
	"jobflow/internal/vault"

	"github.com/gin-gonic/gin"
)

// CredentialHandler sits between the request layer and the store with the
// vault as a codec: plaintext credentials exist only inside this handler.
type CredentialHandler struct {
	store *store.Store
	vault *vault.Vault
}

func NewCredentialHandler(st *store.Store, v *vault.Vault) *CredentialHandler {
	return &CredentialHandler{store: st, vault: v}
}

// GET /api/credentials
// Ciphertext is excluded from serialization; credentials are write-only at
// this boundary.
func (h *CredentialHandler) List(c *gin.Context) {
	creds, err := h.store.ListPlatformCredentials(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err, "fetch credentials")
		return
	}
	c.JSON(http.StatusOK, creds)
}

// POST /api/credentials
func (h *CredentialHandler) Create(c *gin.Context) {
	var req model.CredentialsCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	plaintext, err := json.Marshal(req.Credentials)
	if err != nil {
		badRequest(c, err)
		return
	}
	ciphertext, err := h.vault.Encrypt(string(plaintext))
	if err != nil {
		fail(c, err, "create credentials")
		return
	}

	cred, err := h.store.CreatePlatformCredentials(c.Request.Context(), userID(c), req.Platform, ciphertext)
	if err != nil {
		fail(c, err, "create credentials")
		return
	}
	c.JSON(http.StatusOK, cred)
}

// DELETE /api/credentials/:id
func (h *CredentialHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeletePlatformCredentials(c.Request.Context(), id); err != nil {
		fail(c, err, "delete credentials")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Credentials deleted successfully"})
}
