// Package reqctx carries request-scoped data through context.Context:
// authentication claims, request metadata, and trace identifiers.
//
// All context keys are unexported; access goes through the typed getters and
// setters. HTTP middleware sets RequestMeta for every request and Claims only
// after a token verifies; services read them without knowing about fiber.
//
//	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{
//	    RequestID: rid,
//	    ClientIP:  ip,
//	})
//	ctx = reqctx.WithClaims(ctx, claims)
//
//	if reqctx.IsAuthenticated(ctx) {
//	    accountID, _ := reqctx.UserIDFromContext(ctx)
//	}
package reqctx
