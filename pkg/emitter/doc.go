// Package emitter is the in-process event bus the SDK publishes lifecycle
// events through (login, logout, signup, password reset).
//
//	em := emitter.New()
//	off := em.On("auth:login", func(payload any) {
//		// react to login
//	})
//	defer off()
//
//	em.Emit("auth:login", user)
package emitter
