package formatter

import (
	"context"
	"errors"
	"sync"
)

var (
	defaultMu        sync.Mutex
	defaultFormatter *Formatter
)

// ErrAlreadyInstalled is returned by Use when a default formatter has
// already been installed.
var ErrAlreadyInstalled = errors.New("a default formatter is already installed")

// Use installs f as the process-wide default formatter. It fails if a
// default is already installed; use UseScoped to override temporarily.
func Use(f *Formatter) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultFormatter != nil {
		return ErrAlreadyInstalled
	}
	defaultFormatter = f
	return nil
}

// MustUse installs f as the process-wide default and panics if a default is
// already installed.
func MustUse(f *Formatter) {
	if err := Use(f); err != nil {
		panic(err)
	}
}

// Default returns the installed default formatter, or nil.
func Default() *Formatter {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultFormatter
}

// ResetDefault uninstalls the default formatter.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultFormatter = nil
}

// Guard restores the previously installed default formatter when released.
type Guard struct {
	once sync.Once
	prev *Formatter
}

// UseScoped installs f as the default and returns a Guard that restores the
// prior default on Release. Release on every exit path (defer it); the guard
// is idempotent. Go has no goroutine-local storage, so the override is
// visible process-wide for the guard's lifetime; use ContextWithFormatter to
// scope a formatter to one logical task instead.
func UseScoped(f *Formatter) *Guard {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	g := &Guard{prev: defaultFormatter}
	defaultFormatter = f
	return g
}

// Release restores the default formatter that was installed before
// UseScoped. Only the first call has any effect.
func (g *Guard) Release() {
	g.once.Do(func() {
		defaultMu.Lock()
		defer defaultMu.Unlock()
		defaultFormatter = g.prev
	})
}

type formatterKey struct{}

// ContextWithFormatter returns a context carrying f, overriding the default
// for code that resolves its formatter with FromContext.
func ContextWithFormatter(ctx context.Context, f *Formatter) context.Context {
	return context.WithValue(ctx, formatterKey{}, f)
}

// FromContext returns the formatter carried by ctx, falling back to the
// installed default. The boolean reports whether any formatter was found.
func FromContext(ctx context.Context) (*Formatter, bool) {
	if f, ok := ctx.Value(formatterKey{}).(*Formatter); ok {
		return f, true
	}
	f := Default()
	return f, f != nil
}
