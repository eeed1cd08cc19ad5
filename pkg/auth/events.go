package auth

// Events published on the lifecycle emitter. Login and signup carry the
// API-serialized user details; the rest carry no payload.
const (
	EventLogin                  = "auth:login"
	EventLogout                 = "auth:logout"
	EventSignup                 = "auth:signup"
	EventPasswordResetRequested = "auth:password-reset-requested"
	EventPasswordResetConfirmed = "auth:password-reset-confirmed"
)
