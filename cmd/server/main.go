package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	_ "github.com/go-sql-driver/mysql"

	"github.com/Vinay-K-Rajith/ChatPilot-sub001/config"
	"github.com/Vinay-K-Rajith/ChatPilot-sub001/pkg/otellib"
	"github.com/Vinay-K-Rajith/ChatPilot-sub001/pkg/twilioclient"
	"github.com/Vinay-K-Rajith/ChatPilot-sub001/repository"
	"github.com/Vinay-K-Rajith/ChatPilot-sub001/service/dispatch"
)

func main() {
	rootCmd := &cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	tracerProvider, shutdown := otellib.InitOtel("chatpilot-dispatch", "local", conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)

	twilio := twilioclient.New(conf.Twilio, logger)

	registry := dispatch.NewRegistry(
		provider,
		repository.NewTemplate(),
		twilio,
		time.Duration(conf.Twilio.StatusCacheTTLSeconds)*time.Second,
		logger,
	)

	service := dispatch.NewService(
		provider,
		repository.NewCampaign(),
		repository.NewLead(),
		repository.NewMessage(),
		registry,
		twilio,
		logger,
	)
	wrapped := dispatch.NewIServiceWrapper(service, tracerProvider.Tracer("dispatch"), "dispatch/")

	server := dispatch.NewServer(wrapped, registry, logger)

	startHTTPServers(conf, server)
}

func startHTTPServers(conf config.Config, server *dispatch.Server) {
	fmt.Println("HTTP:", conf.Server.ListenAddr())
	fmt.Println("Metrics:", conf.Metrics.ListenAddr())

	apiServer := &http.Server{
		Addr:    conf.Server.ListenAddr(),
		Handler: server.Routes(),
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:    conf.Metrics.ListenAddr(),
		Handler: metricsMux,
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		err := apiServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		fmt.Println("Shutdown HTTP server successfully")
	}()

	go func() {
		defer wg.Done()

		err := metricsServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		fmt.Println("Shutdown metrics server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, os.Kill)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := apiServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}
	err = metricsServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	wg.Wait()
}
