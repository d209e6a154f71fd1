package cli

import (
	"context"

	"github.com/thenoetrevino/funil/internal/app"
)

type appKey struct{}

// WithApp returns a context carrying an existing App. Commands run with such
// a context use it instead of opening the user's database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// GetCLIFromContext returns a CLI over the App stored by WithApp, or a new
// CLI over the user's configuration and database.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx)
}
