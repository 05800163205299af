package main

import (
	"flag"
	"log/slog"
	"os"

	"jobflow/internal/config"
	"jobflow/internal/handler"
	"jobflow/internal/logger"
	"jobflow/internal/mail"
	"jobflow/internal/middleware"
	"jobflow/internal/service"
	"jobflow/internal/store"
	"jobflow/internal/vault"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	st := store.New(db)
	if err := st.AutoMigrate(); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	credVault, err := vault.New(cfg.Vault.Key)
	if err != nil {
		slog.Error("vault init failed", "err", err)
		os.Exit(1)
	}

	mailClient := mail.NewClient(mail.Config{BaseURL: cfg.Mail.BaseURL, APIKey: cfg.Mail.APIKey})
	if !mailClient.IsConfigured() {
		slog.Warn("mail transport not configured, campaign sends will fail")
	}

	dashboardSvc := service.NewDashboardService(st)
	campaignSvc := service.NewCampaignService(st, mailClient)
	autoApplySvc := service.NewAutoApplyService(st)

	authH := handler.NewAuthHandler(st)
	appH := handler.NewApplicationHandler(st)
	emailH := handler.NewEmailHandler(st)
	settingsH := handler.NewSettingsHandler(st)
	credH := handler.NewCredentialHandler(st, credVault)
	statsH := handler.NewStatsHandler(st, dashboardSvc)
	contactH := handler.NewContactHandler(st)
	templateH := handler.NewTemplateHandler(st)
	campaignH := handler.NewCampaignHandler(st, campaignSvc)
	autoApplyH := handler.NewAutoApplyHandler(autoApplySvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api", middleware.JWTAuth([]byte(cfg.Auth.Secret)))

	api.GET("/auth/user", authH.CurrentUser)

	api.GET("/dashboard/stats", statsH.Dashboard)

	api.GET("/applications", appH.List)
	api.GET("/applications/:id", appH.Get)
	api.POST("/applications", appH.Create)
	api.PUT("/applications/:id", appH.Update)
	api.DELETE("/applications/:id", appH.Delete)
	api.GET("/export/applications", appH.Export)

	api.GET("/emails/job/:jobId", emailH.ListForJob)
	api.GET("/emails/unread", emailH.ListUnread)
	api.POST("/emails", emailH.Create)
	api.PUT("/emails/:id", emailH.Update)

	api.GET("/settings", settingsH.Get)
	api.POST("/settings", settingsH.Upsert)

	api.GET("/credentials", credH.List)
	api.POST("/credentials", credH.Create)
	api.DELETE("/credentials/:id", credH.Delete)

	api.GET("/stats/daily/:date", statsH.Daily)
	api.GET("/stats/weekly", statsH.Weekly)
	api.POST("/stats/daily", statsH.Upsert)
	api.GET("/stats/today", statsH.Today)

	api.GET("/contacts", contactH.List)
	api.POST("/contacts", contactH.Create)
	api.PUT("/contacts/:id", contactH.Update)
	api.DELETE("/contacts/:id", contactH.Delete)

	api.GET("/resume-templates", templateH.List)
	api.POST("/resume-templates", templateH.Create)
	api.PUT("/resume-templates/:id", templateH.Update)
	api.DELETE("/resume-templates/:id", templateH.Delete)

	api.GET("/email-campaigns", campaignH.List)
	api.POST("/email-campaigns", campaignH.Create)
	api.PUT("/email-campaigns/:id", campaignH.Update)
	api.DELETE("/email-campaigns/:id", campaignH.Delete)
	api.POST("/email-campaigns/:id/send", campaignH.Send)

	api.POST("/auto-apply/toggle", autoApplyH.Toggle)
	api.GET("/auto-apply/search", autoApplyH.Search)
	api.POST("/auto-apply/apply", autoApplyH.Apply)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
