package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barbeariaclassica/agenda-api/internal/config"
	dbpkg "github.com/barbeariaclassica/agenda-api/internal/db"
	"github.com/barbeariaclassica/agenda-api/internal/logger"
	"github.com/barbeariaclassica/agenda-api/internal/metrics"
	"github.com/barbeariaclassica/agenda-api/internal/routes"
)

func main() {

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.Load()

	store, err := dbpkg.Open(cfg.DataFile, log)
	if err != nil {
		log.Fatal("falha ao abrir o armazenamento local", zap.Error(err))
	}

	m := metrics.New()

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, store, cfg, log, m)

	log.Info("servidor iniciado",
		zap.String("addr", cfg.Addr()),
		zap.String("dataFile", cfg.DataFile),
		zap.String("timezone", cfg.Timezone),
	)

	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("falha ao iniciar o servidor", zap.Error(err))
	}
}
