package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"OrgRegistryAPI/internal/config"
	"OrgRegistryAPI/internal/db"
	"OrgRegistryAPI/internal/middleware"
	"OrgRegistryAPI/internal/obs"
	"OrgRegistryAPI/internal/repository"
	"OrgRegistryAPI/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// ======================
	// INFRA
	// ======================
	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatal(err)
	}

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	areaRepo := repository.NewAreaRepository(pool)
	countryRepo := repository.NewCountryRepository(pool)
	companyRepo := repository.NewCompanyRepository(pool)
	siteRepo := repository.NewSiteRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)
	buRepo := repository.NewBusinessUnitRepository(pool)
	assessorRepo := repository.NewAssessorRepository(pool)
	privilegeRepo := repository.NewPrivilegeRepository(pool)
	languageRepo := repository.NewLanguageRepository(pool)

	// ======================
	// AUTH
	// ======================
	tokens := middleware.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	guard := middleware.NewAccessGuard(tokens, userRepo)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(userRepo, tokens, cfg.MinPasswordLen)
	userSvc := services.NewUserService(userRepo, roleRepo, assessorRepo, tokens)
	roleSvc := services.NewRoleService(roleRepo, userRepo)
	areaSvc := services.NewAreaService(areaRepo, countryRepo)
	countrySvc := services.NewCountryService(countryRepo, areaRepo)
	companySvc := services.NewCompanyService(companyRepo)
	siteSvc := services.NewSiteService(siteRepo)
	activitySvc := services.NewActivityService(activityRepo)
	buSvc := services.NewBusinessUnitService(buRepo)
	assessorSvc := services.NewAssessorService(assessorRepo)
	privilegeSvc := services.NewPrivilegeService(privilegeRepo, userRepo)
	languageSvc := services.NewLanguageService(languageRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(obs.Middleware())
	e.Use(echomw.RateLimiter(echomw.NewRateLimiterMemoryStore(rate.Limit(50))))

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(e.Group("/auth"), authSvc, guard)
	registerUserRoutes(e.Group("/user"), userSvc, guard)
	registerRoleRoutes(e.Group("/role"), roleSvc, guard)
	registerAreaRoutes(e.Group("/area"), areaSvc, guard)
	registerCountryRoutes(e.Group("/country"), countrySvc, guard)
	registerCompanyRoutes(e.Group("/company"), companySvc, guard)
	registerSiteRoutes(e.Group("/site"), siteSvc, guard)
	registerActivityRoutes(e.Group("/activity"), activitySvc, guard)
	registerBusinessUnitRoutes(e.Group("/businessunit"), buSvc, guard)
	registerAssessorRoutes(e.Group("/assessor"), assessorSvc, guard)
	registerPrivilegeRoutes(e.Group("/privilege"), privilegeSvc, guard)
	registerLanguageRoutes(e.Group("/language"), languageSvc, guard)

	// ======================
	// TECHNICAL
	// ======================
	e.GET("/metrics", obs.Handler())
	e.GET("/health", func(c echo.Context) error {
		dbStatus := "Connected"
		pingCtx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			dbStatus = "Disconnected"
		}
		return c.JSON(http.StatusOK, echo.Map{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"database":  dbStatus,
		})
	})

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
