package router

import (
	"github.com/gin-gonic/gin"

	"donorhub.app/api/internal/http/handler"
	"donorhub.app/api/internal/http/middleware"
	"donorhub.app/api/internal/service"
)

type RouterConfig struct {
	// MediaDir is served under MediaPath when files are stored on local disk.
	MediaDir  string
	MediaPath string
}

func SetupRoutes(router *gin.Engine, services *service.Services, auth *middleware.Authenticator, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if cfg.MediaDir != "" && cfg.MediaPath != "" {
		router.Static(cfg.MediaPath, cfg.MediaDir)
	}

	v1 := router.Group("/api/v1")
	v1.Use(auth.Authenticate())
	{
		UserRouter(v1.Group("/users"), handler.NewUserHandler())

		requestHandler := handler.NewOrganizationRequestHandler(services.OrganizationRequests())
		OrganizationRequestRouter(v1.Group("/organization-requests"), requestHandler)

		orgs := v1.Group("/organizations")
		OrganizationRouter(orgs, handler.NewOrganizationHandler(services.Organizations()))

		transactionHandler := handler.NewTransactionHandler(services.Transactions())
		TransactionRouter(orgs.Group("/:org_id/transactions"), v1.Group("/transactions"), transactionHandler)

		activityHandler := handler.NewActivityHandler(services.Activities())
		ActivityRouter(orgs.Group("/:org_id/activities"), v1.Group("/activities"), activityHandler)

		eventHandler := handler.NewEventHandler(services.Events())
		EventRouter(orgs.Group("/:org_id/events"), v1.Group("/events"), eventHandler)

		chatHandler := handler.NewChatHandler(services.Chats())
		ChatRouter(orgs.Group("/:org_id/chats"), v1.Group("/chats"), v1.Group("/chat-messages"), chatHandler)

		notificationHandler := handler.NewNotificationHandler(services.Notifications())
		NotificationRouter(v1.Group("/notifications"), notificationHandler)
	}
}
