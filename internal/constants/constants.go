package constants

// Session and context keys
const (
	SessionCookieName = "komisi_session"
	ContextKeyUserID  = "user_id"
	ContextKeyActor   = "actor"
)
