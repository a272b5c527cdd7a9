package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	billingdomain "github.com/smallbiznis/shopbill/internal/billing/domain"
	catalogdomain "github.com/smallbiznis/shopbill/internal/catalog/domain"
	"github.com/smallbiznis/shopbill/internal/config"
	"github.com/smallbiznis/shopbill/internal/observability"
	obsmiddleware "github.com/smallbiznis/shopbill/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/shopbill/internal/observability/metrics"
	shopdomain "github.com/smallbiznis/shopbill/internal/shop/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	db         *gorm.DB
	shopSvc    shopdomain.Service
	catalogSvc catalogdomain.Service
	billingSvc billingdomain.Service
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	DB         *gorm.DB
	ShopSvc    shopdomain.Service
	CatalogSvc catalogdomain.Service
	BillingSvc billingdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		db:         p.DB,
		shopSvc:    p.ShopSvc,
		catalogSvc: p.CatalogSvc,
		billingSvc: p.BillingSvc,
	}

	svc.registerRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	r := s.engine

	r.GET("/", s.GetDashboard)

	// -------- Shop --------
	r.GET("/shop/setup", s.GetShop)
	r.POST("/shop/setup", s.SetupShop)

	// -------- Items --------
	r.GET("/items", s.ListItems)
	r.POST("/items/add", s.AddItem)
	r.GET("/items/:id", s.GetItemByID)
	r.POST("/items/edit/:id", s.EditItem)
	r.GET("/items/delete/:id", s.DeleteItem)

	// -------- Bills --------
	r.GET("/bills", s.ListBills)
	r.GET("/bills/create", s.GetBillForm)
	r.GET("/bills/:id", s.GetBillByID)
	r.GET("/bills/delete/:id", s.DeleteBill)
	r.GET("/bills/download/:id", s.DownloadBill)
	r.POST("/bills/save", s.SaveBill)

	r.POST("/api/calculate_bill", s.CalculateBill)
}
