package modules

import (
	"github.com/santiment/sanbase/internal/services/web/modules/account"
	"github.com/santiment/sanbase/internal/services/web/modules/auth"
	"github.com/santiment/sanbase/internal/services/web/modules/backtest"
	"github.com/santiment/sanbase/internal/services/web/modules/icons"
	"github.com/santiment/sanbase/internal/services/web/modules/public"
	"github.com/santiment/sanbase/internal/services/web/modules/search"
	"github.com/santiment/sanbase/internal/services/web/modules/stories"
)

// DefaultPublicModules returns the modules served without a session.
func DefaultPublicModules() []Module {
	return []Module{
		public.New(),
		icons.New(),
		backtest.New(),
		search.New(),
		auth.New(),
		stories.New(),
	}
}

// DefaultProtectedModules returns the modules served under /app/.
func DefaultProtectedModules() []Module {
	return []Module{
		account.New(),
	}
}
