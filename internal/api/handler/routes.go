package handler

import (
	"net/http"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/api/handler/router"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/usecases/dashboard"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/filters",
			Method:  http.MethodPut,
			Handler: UpdateFilters(service),
		},
		{
			Path:    "/v1/dashboard/forecast-month",
			Method:  http.MethodPut,
			Handler: UpdateForecastMonth(service),
		},
		{
			Path:    "/v1/dashboard/history",
			Method:  http.MethodGet,
			Handler: GetFilterHistory(service),
		},
		{
			Path:    "/v1/dashboard/series/:mode",
			Method:  http.MethodGet,
			Handler: GetSeries(service),
		},
		{
			Path:    "/v1/dashboard/reload",
			Method:  http.MethodPost,
			Handler: ReloadDashboard(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
