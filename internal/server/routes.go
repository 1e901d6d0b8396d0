package server

import (
	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/viaaberta/viaaberta/internal/api/v1"
	"github.com/viaaberta/viaaberta/internal/report"
	"github.com/viaaberta/viaaberta/internal/store/postgres"
)

func registerAPIRoutes(api huma.API, store *postgres.Store, reports *report.Service) {
	v1.RegisterUserRoutes(api, store)
	v1.RegisterLocationRoutes(api, store)
	v1.RegisterCategoryRoutes(api, store)
	v1.RegisterReportRoutes(api, reports)
}
