package contracts

// IdentityWebhookRequest is the payload the identity provider posts when a
// user record changes. Type is one of user.created, user.updated or
// user.deleted; anything else is acknowledged and ignored.
type IdentityWebhookRequest struct {
	Type   string         `json:"type"`
	Record IdentityRecord `json:"record"`
}

// WebhookAckResponse acknowledges a webhook delivery. Ignored events carry
// a reason so provider logs stay debuggable.
type WebhookAckResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type IdentityRecord struct {
	Id        string  `json:"id" binding:"required"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	AvatarUrl *string `json:"avatar_url"`
}
