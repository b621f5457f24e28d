package middleware

import "net/http"

// Chain folds middlewares into one, first argument outermost:
//
//	Chain(RequestID(), Logging(logger), Recovery(errs, logger))(h)
//
// wraps h as RequestID(Logging(Recovery(h))). Nil entries are skipped so
// optional layers can be passed through unconditionally.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	active := make([]func(http.Handler) http.Handler, 0, len(middlewares))
	for _, mw := range middlewares {
		if mw != nil {
			active = append(active, mw)
		}
	}

	return func(handler http.Handler) http.Handler {
		for i := len(active) - 1; i >= 0; i-- {
			handler = active[i](handler)
		}
		return handler
	}
}
