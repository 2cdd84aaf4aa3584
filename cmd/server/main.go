package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/wealthviz/investment-service/internal/adapters/chartgen"
	"github.com/wealthviz/investment-service/internal/adapters/growth"
	"github.com/wealthviz/investment-service/internal/adapters/markup"
	"github.com/wealthviz/investment-service/internal/adapters/rest"
	"github.com/wealthviz/investment-service/internal/pkg/config"
	"github.com/wealthviz/investment-service/internal/pkg/httpserver"
	"github.com/wealthviz/investment-service/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Adapters (infrastructure)
	builder := growth.NewBuilder()
	renderer := chartgen.NewRenderer(cfg.ChartWidth, cfg.ChartHeight)
	restyler := markup.NewRestyler()

	// Application service (use cases)
	svc := usecase.NewInvestmentService(builder, renderer, restyler)

	// HTTP server (interface adapter)
	s := httpserver.New(cfg.HTTPAddr, rest.NewHandler(svc))

	// Start
	go func() {
		log.Printf("%s listening on %s", cfg.ServiceName, cfg.HTTPAddr)
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http serve error: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	log.Println("Shutting down...")
	s.Stop()
}
