package routes

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/zetherabarter/Rec-Backend2/internal"
	"github.com/zetherabarter/Rec-Backend2/internal/controllers"
	"github.com/zetherabarter/Rec-Backend2/internal/middleware"
)

const versionRegex = "(/v[0-9]{1,2}|^$)"

type Registry interface {
	controllers.EmailRegistry
	controllers.ApplicantRegistry
}

type EngineConfigurator interface {
	GetVersion() (string, error)
}

type EngineConfig struct {
	Registry           Registry
	Dispatcher         controllers.EmailDispatcher
	Recorder           controllers.SummaryRecorder
	EngineConfigurator EngineConfigurator
	RateLimit          middleware.RateLimitMiddleware
	CacheMiddleware    middleware.CacheMiddleware
}

type routeGroupCfg struct {
	Engine          *gin.Engine
	Version         string
	CacheMiddleware gin.HandlerFunc
}

func NewEngine(cfg EngineConfig) (*gin.Engine, error) {

	version, err := cfg.EngineConfigurator.GetVersion()

	if err != nil {
		return nil, err
	}

	match, _ := regexp.MatchString(versionRegex, version)

	if !match {
		return nil, fmt.Errorf("api version should have the format %s", versionRegex)
	}

	ec := controllers.EmailController{
		Registry:   cfg.Registry,
		Dispatcher: cfg.Dispatcher,
		Recorder:   cfg.Recorder,
	}

	ac := controllers.ApplicantController{
		Registry: cfg.Registry,
	}

	r := gin.Default()

	r.Use(gin.Recovery())
	r.Use(gin.HandlerFunc(cfg.RateLimit))

	routesCfg := routeGroupCfg{
		Engine:          r,
		Version:         version,
		CacheMiddleware: gin.HandlerFunc(cfg.CacheMiddleware),
	}

	SetupEmailRoutes(emailRoutesCfg{
		routeGroupCfg: routesCfg,
		Controller:    &ec,
	})

	SetupApplicantRoutes(applicantRoutesCfg{
		routeGroupCfg: routesCfg,
		Controller:    &ac,
	})

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("placeholderkeys", internal.PlaceholderKeysValidator)
	}

	return r, nil
}
