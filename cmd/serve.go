package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zoocast/catalog-api/api"
	"github.com/zoocast/catalog-api/api/types"
	"github.com/zoocast/catalog-api/internal/services/bot"
	"github.com/zoocast/catalog-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Zoo Catalog API server with the configured settings.

The server fetches the configured RSS feed on each catalog request and
answers with the episodes grouped by media type, year and month. When a
Telegram bot token is configured the bot is started alongside the server
and replies to /start with a button that opens the Mini App.

Example:
  catalog-api serve
  catalog-api serve --port 9090
  catalog-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	host := serverHost
	if host == "" {
		host = cfg.Server.Host
	}
	port := serverPort
	if port == 0 {
		port = cfg.Server.Port
	}

	server := api.NewServer(fmt.Sprintf("%s:%d", host, port), cfg.Server)
	server.SetDependencies(&types.Dependencies{})
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	// Start the Telegram bot when a token is configured. The bot is
	// optional; the HTTP API works without it.
	var catalogBot *bot.Bot
	if cfg.Telegram.BotToken != "" {
		catalogBot, err = bot.New(cfg.Telegram.BotToken, cfg.Telegram.WebAppURL)
		if err != nil {
			return fmt.Errorf("creating telegram bot: %w", err)
		}
		go catalogBot.Start()
		log.Println("Telegram bot started")
	}

	fmt.Printf("Starting Zoo Catalog API server on %s:%d\n", host, port)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	if catalogBot != nil {
		catalogBot.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}
