package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/barberia/barber-manager-api/internal/api/handler/router"
	"github.com/barberia/barber-manager-api/internal/usecases/authenticating"
	"github.com/barberia/barber-manager-api/internal/usecases/importing"
	"github.com/barberia/barber-manager-api/internal/usecases/registering"
	"github.com/barberia/barber-manager-api/internal/usecases/reporting"
	"github.com/barberia/barber-manager-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Haircuts(service registering.Registrar) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/haircuts",
			Method:      http.MethodPost,
			Handler:     CreateHaircut(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/haircuts",
			Method:      http.MethodGet,
			Handler:     ListHaircuts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/haircuts",
			Method:      http.MethodDelete,
			Handler:     DeleteHaircutsByDate(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/haircuts/:id",
			Method:      http.MethodGet,
			Handler:     GetHaircut(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/haircuts/:id",
			Method:      http.MethodPut,
			Handler:     UpdateHaircut(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/haircuts/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteHaircut(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/haircuts/:id/price",
			Method:      http.MethodPatch,
			Handler:     UpdateHaircutPrice(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func History(service registering.Registrar) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/history/today",
			Method:      http.MethodGet,
			Handler:     TodaySummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/history/daily",
			Method:      http.MethodGet,
			Handler:     DailyHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/history/date/:date",
			Method:      http.MethodGet,
			Handler:     HistoryByDate(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Imports(service importing.Importer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/imports",
			Method:      http.MethodPost,
			Handler:     ImportFile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/imports/preview",
			Method:      http.MethodPost,
			Handler:     PreviewImport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Statistics(registrar registering.Registrar, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/statistics",
			Method:      http.MethodGet,
			Handler:     GetStatistics(registrar, reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
