package middleware

import "context"

type contextKey string

// routeKey stores the *routeHolder placed by Logging.
const routeKey contextKey = "route"

// UnmatchedRoute labels requests no route matched.
const UnmatchedRoute = "unmatched"

// routeHolder lets a handler deep in the chain report its route to the
// middleware that created the request context.
type routeHolder struct {
	route string
}

func withRouteHolder(ctx context.Context) (context.Context, *routeHolder) {
	h := &routeHolder{route: UnmatchedRoute}
	return context.WithValue(ctx, routeKey, h), h
}

// SetRoute records the route that served the request.
func SetRoute(ctx context.Context, route string) {
	if h, ok := ctx.Value(routeKey).(*routeHolder); ok {
		h.route = route
	}
}

// Route returns the route recorded with SetRoute, or UnmatchedRoute.
func Route(ctx context.Context) string {
	if h, ok := ctx.Value(routeKey).(*routeHolder); ok {
		return h.route
	}
	return UnmatchedRoute
}
