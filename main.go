package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for migrations
	"go.uber.org/zap"

	"github.com/softerio/chatbot-engine/pkg/chat"
	"github.com/softerio/chatbot-engine/pkg/config"
	"github.com/softerio/chatbot-engine/pkg/database"
	"github.com/softerio/chatbot-engine/pkg/handlers"
	"github.com/softerio/chatbot-engine/pkg/knowledge"
	"github.com/softerio/chatbot-engine/pkg/llm"
	mcpserver "github.com/softerio/chatbot-engine/pkg/mcp"
	"github.com/softerio/chatbot-engine/pkg/middleware"
	"github.com/softerio/chatbot-engine/pkg/repositories"
)

// Version is set at build time via ldflags.
var Version = "dev"

// shutdownTimeout bounds how long in-flight requests may finish after
// a termination signal.
const shutdownTimeout = 10 * time.Second

func main() {
	cliMode := flag.Bool("cli", false, "run the interactive terminal chat instead of the HTTP server")
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	// Deferred cleanup (recorder drain, pool close) must run before the
	// process exits, so run owns the resources and main owns the exit code.
	os.Exit(run(*cliMode, *configPath))
}

func run(cliMode bool, configPath string) int {
	cfg, err := config.Load(configPath, Version)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Printf("Failed to create logger: %v", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	kb, err := knowledge.Load(cfg.KnowledgePath)
	if err != nil {
		logger.Error("Failed to load knowledge base", zap.Error(err))
		return 1
	}
	logger.Info("Knowledge base loaded",
		zap.String("path", cfg.KnowledgePath),
		zap.String("company", kb.Company().Name))

	generator, err := llm.NewGenerator(cfg.AI.Provider, &llm.Config{
		Endpoint:    cfg.AI.BaseURL,
		Model:       cfg.AI.Model,
		APIKey:      cfg.AI.APIKey,
		Temperature: cfg.AI.Temperature,
	}, logger)
	if err != nil {
		logger.Error("Failed to create generator", zap.Error(err))
		return 1
	}

	var recorder chat.ExchangeRecorder
	if cfg.Database.Enabled {
		db, asyncRecorder, err := setupTranscripts(cfg, logger)
		if err != nil {
			logger.Error("Failed to set up transcript store", zap.Error(err))
			return 1
		}
		defer db.Close()
		defer asyncRecorder.Close()
		recorder = asyncRecorder
	}

	engine := chat.NewEngine(kb, generator, recorder, chat.Options{
		MatchThreshold:    cfg.Chat.MatchThreshold,
		GenerationTimeout: cfg.Chat.GenerationTimeout,
	}, logger)

	if cliMode {
		runCLI(engine, kb, generator)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runServer(ctx, cfg, engine, kb, logger); err != nil {
		logger.Error("Server failed", zap.Error(err))
		return 1
	}
	return 0
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// setupTranscripts connects the optional Postgres transcript store,
// applies migrations, and starts the async recorder.
func setupTranscripts(cfg *config.Config, logger *zap.Logger) (*database.DB, *chat.AsyncExchangeRecorder, error) {
	migrationDB, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("open migration connection: %w", err)
	}
	if err := database.RunMigrations(migrationDB, cfg.Database.MigrationsPath, logger); err != nil {
		_ = migrationDB.Close()
		return nil, nil, err
	}
	if err := migrationDB.Close(); err != nil {
		return nil, nil, fmt.Errorf("close migration connection: %w", err)
	}

	db, err := database.NewConnection(context.Background(), &database.Config{
		URL:            cfg.Database.URL,
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		return nil, nil, err
	}

	repo := repositories.NewExchangeRepository(db)
	recorder := chat.NewAsyncExchangeRecorder(repo, logger, 0)
	return db, recorder, nil
}

// runServer serves HTTP until ctx is cancelled, then shuts down
// gracefully so the transcript recorder and connection pool can close.
func runServer(ctx context.Context, cfg *config.Config, engine *chat.Engine, kb *knowledge.KnowledgeBase, logger *zap.Logger) error {
	mux := http.NewServeMux()

	sessions := handlers.NewSessionStore(cfg.Session.Secret, cfg.Env != "local")

	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewCompanyHandler(kb, logger).RegisterRoutes(mux)
	handlers.NewChatHandler(engine, sessions, logger).RegisterRoutes(mux)

	if cfg.MCP.Enabled {
		mcpSrv := mcpserver.NewServer("chatbot-engine", cfg.Version, engine, logger)
		mux.Handle("/mcp", mcpSrv.NewStreamableHTTPServer())
		logger.Info("MCP tool surface enabled at /mcp")
	}

	handler := middleware.RequestLogger(logger)(mux)

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting chatbot-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version),
		zap.String("env", cfg.Env))

	srv := &http.Server{Addr: addr, Handler: handler}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

// runCLI is the synchronous terminal read-loop. It owns no matching
// logic; every line goes through the engine.
func runCLI(engine *chat.Engine, kb *knowledge.KnowledgeBase, generator llm.Generator) {
	fmt.Printf("%s chatbot\n", kb.Company().Name)
	fmt.Println("Type 'quit' to stop, 'lang english' or 'lang urdu' to set the language, 'help' for more.")
	if !generator.Available() {
		fmt.Println("Note: no generation provider configured; answers come from the knowledge base only.")
	}
	fmt.Println()

	sess := chat.NewSession()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		outcome := engine.Handle(context.Background(), line, sess)
		switch outcome.Command {
		case chat.CommandQuit:
			fmt.Println("\nThank you for chatting. Goodbye!")
			return
		case chat.CommandLangEnglish:
			fmt.Println("Language set to English.")
		case chat.CommandLangUrdu:
			fmt.Println("زبان اردو میں تبدیل کر دی گئی ہے۔")
		default:
			fmt.Printf("\nBot: %s\n\n", outcome.Answer.Text)
		}
	}
}
