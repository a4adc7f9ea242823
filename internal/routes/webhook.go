package routes

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baccarifarah/spendLog/internal/contracts"
	domainUser "github.com/baccarifarah/spendLog/internal/domain/user"
	appErrors "github.com/baccarifarah/spendLog/internal/errors"
	"github.com/baccarifarah/spendLog/internal/logger"
)

// IdentityWebhook handles user lifecycle events pushed by the identity
// provider. The payload is authenticated with an HMAC signature header,
// not a bearer token. Authenticated but malformed events are acknowledged
// with 200 and an ignored status so the provider stops retrying them.
func (h *Handler) IdentityWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	if !h.verifyWebhookSignature(payload, c.GetHeader("X-Webhook-Signature")) {
		h.respondError(c, appErrors.NewAuthError("SIGNATURE_INVALID", "Webhook signature verification failed"))
		return
	}

	var body contracts.IdentityWebhookRequest
	if err := json.Unmarshal(payload, &body); err != nil {
		h.ignoreWebhook(c, "", "malformed_payload")
		return
	}

	ctx := c.Request.Context()
	switch body.Type {
	case "user.created", "user.updated":
		if body.Record.Id == "" || body.Record.Email == "" {
			h.ignoreWebhook(c, body.Type, "missing_data")
			return
		}
		err = h.UserService.Sync(ctx, &domainUser.User{
			Id:        body.Record.Id,
			Email:     body.Record.Email,
			FullName:  body.Record.FullName,
			AvatarUrl: body.Record.AvatarUrl,
		})
	case "user.deleted":
		if body.Record.Id == "" {
			h.ignoreWebhook(c, body.Type, "missing_data")
			return
		}
		err = h.UserService.Delete(ctx, body.Record.Id)
		if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrUserNotFound.Code {
			// Deletion events may arrive more than once.
			err = nil
		}
	default:
		h.ignoreWebhook(c, body.Type, "unknown_event")
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	logger.Info().Str("event", body.Type).Msg("identity webhook processed")
	c.JSON(http.StatusOK, contracts.WebhookAckResponse{Status: "processed"})
}

func (h *Handler) ignoreWebhook(c *gin.Context, event, reason string) {
	logger.Warn().Str("event", event).Str("reason", reason).Msg("identity webhook ignored")
	c.JSON(http.StatusOK, contracts.WebhookAckResponse{Status: "ignored", Reason: reason})
}

func (h *Handler) verifyWebhookSignature(payload []byte, signature string) bool {
	if h.WebhookSecret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(h.WebhookSecret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
