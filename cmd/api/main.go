package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/JLemieux66/PE/internal/config"
	"github.com/JLemieux66/PE/internal/domain/sqlite"
	"github.com/JLemieux66/PE/internal/domain/sqlite/repository"
	"github.com/JLemieux66/PE/internal/http/handler"
	"github.com/JLemieux66/PE/internal/http/middleware"
	"github.com/JLemieux66/PE/internal/service"
)

const envVarsPrefix = "/peportfolio/prod/"

const frontendDist = "frontend/dist"

func main() {
	validate := validator.New()

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			log.Warnf("no .env file loaded: %v", err)
		}
	}
	config.Load()

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	// Getting repos
	companyRepo := repository.NewCompanyRepository(db)
	firmRepo := repository.NewFirmRepository(db)
	investmentRepo := repository.NewInvestmentRepository(db)

	// Getting services
	companyService := service.NewCompanyService(companyRepo, investmentRepo)
	firmService := service.NewFirmService(firmRepo, investmentRepo, companyRepo)
	metaService := service.NewMetaService(companyRepo, investmentRepo, firmRepo)
	adminService := service.NewAdminService(companyRepo, validate)

	// Getting handlers
	companyRoutes := handler.NewCompanyDefault(companyService)
	firmRoutes := handler.NewFirmDefault(firmService)
	metaRoutes := handler.NewMetaDefault(metaService)
	adminRoutes := handler.NewAdminDefault(adminService)

	e := echo.New()
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit("2M"))

	// Companies
	e.GET("/api/companies", companyRoutes.GetCompanies)
	e.GET("/api/companies/export", companyRoutes.ExportCompanies)
	e.GET("/api/companies/:id", companyRoutes.GetCompany)
	e.GET("/api/investments", companyRoutes.GetInvestments)

	// Firms
	e.GET("/api/firms", firmRoutes.GetFirms)
	e.GET("/api/firms/:name/companies", firmRoutes.GetFirmCompanies)

	// Lookups
	e.GET("/api/sectors", metaRoutes.GetSectors)
	e.GET("/api/statuses", metaRoutes.GetStatuses)
	e.GET("/api/industries", metaRoutes.GetIndustries)
	e.GET("/api/stats", metaRoutes.GetStats)

	// Admin
	e.POST("/api/admin/login", adminRoutes.Login)
	admin := e.Group("/api/admin", middleware.NewAdminMiddleware())
	admin.PUT("/companies/:id", adminRoutes.UpdateCompany)
	admin.DELETE("/companies/:id", adminRoutes.DeleteCompany)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	// Serves the built dashboard when deployed alongside it; bare API
	// deployments get an endpoint index at the root instead.
	if info, err := os.Stat(frontendDist); err == nil && info.IsDir() {
		e.Static("/", frontendDist)
	} else {
		e.GET("/", indexRoute)
	}

	if err := e.Start(":" + config.Port); err != nil {
		panic(err)
	}
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}

func indexRoute(c echo.Context) error {
	resp := echo.Map{
		"name": "PE Portfolio API",
		"endpoints": []string{
			"GET /api/companies",
			"GET /api/companies/:id",
			"GET /api/companies/export",
			"GET /api/investments",
			"GET /api/firms",
			"GET /api/firms/:name/companies",
			"GET /api/sectors",
			"GET /api/statuses",
			"GET /api/industries",
			"GET /api/stats",
			"POST /api/admin/login",
			"PUT /api/admin/companies/:id",
			"DELETE /api/admin/companies/:id",
			"GET /health",
		},
	}
	return c.JSON(http.StatusOK, &resp)
}
