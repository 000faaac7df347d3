package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/handlers"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/framework/mid"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/framework/web"
	"github.com/Danduartem/cafe-com-vendas-v2-sub003/logger"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging) *API {
	return &API{
		shutdown,
		logging,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	app.Get("/health", healthCheck)

	checkout := handlers.NewCheckout(loggerProvider)

	sessionsGroup := web.NewGroup(app, "/checkout/sessions")
	{
		sessionsGroup.Post("", checkout.CreateSession)

		sessionGroup := sessionsGroup.NewSubgroup("/:sessionID", mid.ValidatePathParamNotEmpty("sessionID"))
		{
			sessionGroup.Get("", checkout.GetSession)
			sessionGroup.Post("/lead", checkout.SubmitLead)
			sessionGroup.Post("/events", checkout.ElementEvent)
			sessionGroup.Post("/confirm", checkout.ConfirmSession)
			sessionGroup.Delete("", checkout.CloseSession)
		}
	}

	webhooksGroup := web.NewGroup(app, "/webhooks")
	{
		webhooksGroup.Post("/stripe", checkout.StripeWebhook)
	}

	return app
}

func healthCheck(ctx *gin.Context) error {
	return web.Respond(ctx, gin.H{"status": "ok"}, http.StatusOK)
}
