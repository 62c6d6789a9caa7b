package stylish

import (
	"log/slog"
)

// Handler receives the payload of one dispatched event.
//
// Handlers run synchronously in registration order. Work that should continue after the
// synchronous part returns belongs in a goroutine (see [Async]); the dispatcher never waits.
type Handler func(payload any)

// Async wraps fn so that its body runs in a new goroutine. The returned handler returns
// immediately, which makes its position in the dispatch order apply only to the moment the
// goroutine is started.
//
// A panic inside fn is recovered and logged through slog.Default.
func Async(fn Handler) Handler {
	return func(payload any) {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					slog.Default().Error("async handler panicked", "panic", r)
				}
			}()
			fn(payload)
		}()
	}
}
