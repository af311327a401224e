package routes

import (
	c "github.com/zetherabarter/Rec-Backend2/internal/controllers"
)

type applicantRoutesCfg struct {
	routeGroupCfg
	Controller *c.ApplicantController
}

func SetupApplicantRoutes(cfg applicantRoutesCfg) {

	g := cfg.Engine.Group(cfg.Version)
	{
		g.GET("/applicants",
			cfg.CacheMiddleware,
			cfg.Controller.GetApplicants)

		g.POST("/applicants",
			cfg.Controller.CreateApplicant)

		g.POST("/applicants/bulk",
			cfg.Controller.CreateApplicants)

		g.PATCH("/applicants/:id/attendance",
			cfg.Controller.UpdateAttendance)

		g.POST("/applicants/slots",
			cfg.Controller.AssignSlots)
	}
}
