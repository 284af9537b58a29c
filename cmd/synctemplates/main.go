package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"

	"github.com/Vinay-K-Rajith/ChatPilot-sub001/config"
	"github.com/Vinay-K-Rajith/ChatPilot-sub001/pkg/twilioclient"
	"github.com/Vinay-K-Rajith/ChatPilot-sub001/repository"
	"github.com/Vinay-K-Rajith/ChatPilot-sub001/service/dispatch"
)

func main() {
	rootCmd := cobra.Command{
		Use: "synctemplates",
	}
	rootCmd.AddCommand(
		syncAllCommand(),
		syncOneCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func syncAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "refresh the approval status of every known template",
		Run: func(cmd *cobra.Command, args []string) {
			syncAll()
		},
	}
}

func syncOneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "one [content-sid]",
		Short: "refresh the approval status of one template",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			registry, logger := newRegistry()
			syncOne(registry, logger, args[0])
		},
	}
}

func newRegistry() (*dispatch.Registry, *zap.Logger) {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	if !conf.Twilio.Configured() {
		logger.Fatal("twilio credentials not configured, nothing to sync")
	}

	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)

	registry := dispatch.NewRegistry(
		provider,
		repository.NewTemplate(),
		twilioclient.New(conf.Twilio, logger),
		time.Duration(conf.Twilio.StatusCacheTTLSeconds)*time.Second,
		logger,
	)
	return registry, logger
}

func syncAll() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	if !conf.Twilio.Configured() {
		logger.Fatal("twilio credentials not configured, nothing to sync")
	}

	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)
	templateRepo := repository.NewTemplate()

	registry := dispatch.NewRegistry(
		provider,
		templateRepo,
		twilioclient.New(conf.Twilio, logger),
		time.Duration(conf.Twilio.StatusCacheTTLSeconds)*time.Second,
		logger,
	)

	ctx := context.Background()
	sids, err := templateRepo.ListSids(provider.Readonly(ctx))
	if err != nil {
		logger.Fatal("list templates", zap.Error(err))
	}

	for _, sid := range sids {
		syncOne(registry, logger, sid)
	}
	fmt.Println("Synced", len(sids), "templates")
}

func syncOne(registry *dispatch.Registry, logger *zap.Logger, contentSid string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	template, err := registry.Refresh(ctx, contentSid)
	if err != nil {
		logger.Error("refresh template",
			zap.String("content_sid", contentSid), zap.Error(err))
		return
	}
	fmt.Println(template.ContentSid, "=>", template.Status)
}
