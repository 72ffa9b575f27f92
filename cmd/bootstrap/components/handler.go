package components

import (
	"product-reviews/internal/handler"
	"product-reviews/internal/handler/api"
	"product-reviews/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		middleware.NewHTTPMetrics,
	),
	fx.Invoke(handler.NewRouter),
)
