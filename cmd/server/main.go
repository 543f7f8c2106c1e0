package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"

	"github.com/tapp-eng/campaign-core/audit"
	"github.com/tapp-eng/campaign-core/catalog"
	"github.com/tapp-eng/campaign-core/config"
	"github.com/tapp-eng/campaign-core/event"
	"github.com/tapp-eng/campaign-core/httpapi"
	"github.com/tapp-eng/campaign-core/notify"
	"github.com/tapp-eng/campaign-core/pkg/clock"
	"github.com/tapp-eng/campaign-core/pkg/otellib"
	"github.com/tapp-eng/campaign-core/repository"
	"github.com/tapp-eng/campaign-core/service/analytics"
	"github.com/tapp-eng/campaign-core/service/campaignmgmt"
	"github.com/tapp-eng/campaign-core/service/lifecycle"
	"github.com/tapp-eng/campaign-core/service/roster"
	"github.com/tapp-eng/campaign-core/service/submission"
)

func main() {
	rootCmd := cobra.Command{
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

func newNotifier(conf config.AMQPConfig, logger *zap.Logger) notify.Notifier {
	if !conf.Enabled() {
		return notify.NewLogNotifier(logger)
	}
	notifier, err := notify.NewAMQPNotifier(conf.URL, conf.Queue)
	if err != nil {
		panic(err)
	}
	return notifier
}

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	tracerProvider, shutdown := otellib.InitOtel("campaign-core", "local", conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)

	campaignRepo := repository.NewCachedCampaign(repository.NewCampaign(),
		conf.Cache.SizeMB*1024*1024, conf.Cache.TTL())
	participantRepo := repository.NewParticipant()
	responseRepo := repository.NewResponse()
	activityRepo := repository.NewActivity()

	auditSubscriber := audit.NewSubscriber(provider, activityRepo, logger)

	dispatcher := event.NewDispatcher(logger)
	dispatcher.Register(auditSubscriber)
	dispatcher.Register(notify.NewBridge(provider, campaignRepo,
		newNotifier(conf.AMQP, logger)))

	clk := clock.New()
	cat := catalog.NewMemory()

	lifecycleService := lifecycle.NewService(provider, campaignRepo, participantRepo,
		clk, dispatcher, logger)
	submissionService := submission.NewService(provider, campaignRepo, participantRepo,
		responseRepo, cat, clk, dispatcher, logger)
	rosterService := roster.NewService(provider, campaignRepo, participantRepo,
		responseRepo, clk, dispatcher, logger)
	campaignService := campaignmgmt.NewService(provider, campaignRepo, participantRepo,
		responseRepo, activityRepo, conf.Defaults.CampaignDefaults(), dispatcher, logger)
	analyticsService := analytics.NewService(provider, campaignRepo, participantRepo,
		responseRepo, clk, logger)

	server := httpapi.NewServer(campaignService, lifecycleService, rosterService,
		submissionService, analyticsService, provider, activityRepo, logger)

	tickerCtx, cancelTicker := context.WithCancel(context.Background())
	go lifecycleService.RunTicker(tickerCtx, conf.Lifecycle.TickInterval())
	go auditSubscriber.RunRetention(tickerCtx, 24*time.Hour, conf.Audit.Retention())

	runHTTPServer(conf, server.Router(), logger)
	cancelTicker()
}

func runHTTPServer(conf config.Config, handler http.Handler, logger *zap.Logger) {
	fmt.Println("HTTP:", conf.Server.HTTP.ListenString())

	httpServer := &http.Server{
		Addr:    conf.Server.HTTP.ListenString(),
		Handler: handler,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		fmt.Println("Shutdown HTTP server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := httpServer.Shutdown(ctx)
	if err != nil {
		logger.Error("shutdown http server", zap.Error(err))
	}

	<-done
}
