package routes

import (
	c "github.com/zetherabarter/Rec-Backend2/internal/controllers"
)

type emailRoutesCfg struct {
	routeGroupCfg
	Controller *c.EmailController
}

func SetupEmailRoutes(cfg emailRoutesCfg) {

	g := cfg.Engine.Group(cfg.Version)
	{
		g.POST("/emails/send",
			cfg.Controller.SendEmail)

		g.GET("/emails/summaries",
			cfg.CacheMiddleware,
			cfg.Controller.GetEmailSummaries)

		g.GET("/emails/summaries/stats",
			cfg.CacheMiddleware,
			cfg.Controller.GetEmailStats)

		g.POST("/emails/templates",
			cfg.Controller.SaveEmailTemplate)

		g.GET("/emails/templates",
			cfg.CacheMiddleware,
			cfg.Controller.GetEmailTemplates)
	}
}
