package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aligo/server/internal/config"
	"github.com/aligo/server/internal/data"
	"github.com/aligo/server/internal/handler"
	gonet "github.com/aligo/server/internal/net"
	"github.com/aligo/server/internal/net/packet"
	"github.com/aligo/server/internal/persist"
	"github.com/aligo/server/internal/scripting"
	"github.com/aligo/server/internal/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(serverName string, serverID int) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m            AliGO  v0.1.0                  \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m      愛麗希雅 · Go 遊戲伺服器             \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1m伺服器:\033[0m %s \033[90m(編號: %d)\033[0m\n\n", serverName, serverID)
}

func printSection(title string) {
	// Use rune count for CJK width calculation (each CJK char = 2 columns)
	displayWidth := 0
	for _, r := range title {
		if r > 0x7F {
			displayWidth += 2
		} else {
			displayWidth++
		}
	}
	lineLen := 46 - displayWidth - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	displayWidth := 0
	for _, r := range label {
		if r > 0x7F {
			displayWidth += 2
		} else {
			displayWidth++
		}
	}
	dotsLen := 42 - displayWidth - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main server logic ─────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/server.toml"
	if p := os.Getenv("ALIGO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Server.Name, cfg.Server.ID)

	// 3. Connect to PostgreSQL and run migrations
	printSection("資料庫")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := persist.NewDB(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()
	printOK("PostgreSQL 連線成功")

	if err := persist.RunMigrations(ctx, db.Pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	printOK("資料庫遷移完成")
	fmt.Println()

	// 4. Create repositories
	accountRepo := persist.NewAccountRepo(db)
	charRepo := persist.NewCharacterRepo(db)
	horseRepo := persist.NewHorseRepo(db)

	// 5. Load static tables
	printSection("資料載入")

	tables, err := data.LoadAll(cfg.Game.DataDir)
	if err != nil {
		return fmt.Errorf("load tables: %w", err)
	}
	printStat("任務", tables.Quests.Count())
	printStat("每日任務", tables.DailyQuests.Count())
	printStat("活動", tables.SpecialEvents.Count())
	printStat("服裝", tables.Dresses.Count())

	// 5a. Initialize Lua scripting engine
	luaEngine, err := scripting.NewEngine(cfg.Game.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()
	printOK("Lua 腳本載入完成")
	fmt.Println()

	// 6. Shared world state and handler dependencies
	deps := &handler.Deps{
		Config:     cfg,
		Log:        log,
		Accounts:   accountRepo,
		Characters: charRepo,
		Horses:     horseRepo,
		Tables:     tables,
		Scripting:  luaEngine,
		Ranches:    world.NewRanchRegistry(log),
		Handoff:    world.NewHandoffIssuer(cfg.Game.HandoffTTL),
	}

	params := gonet.SessionParams{
		OutQueueSize: cfg.Network.OutQueueSize,
		MaxFrameSize: cfg.Network.MaxFrameSize,
		WriteTimeout: cfg.Network.WriteTimeout,
		IdleTimeout:  cfg.Network.IdleTimeout,
	}
	if cfg.RateLimit.Enabled {
		params.PacketsPerSecond = cfg.RateLimit.PacketsPerSecond
	}

	// 7. One server per enabled role, each with its own registry
	printSection("伺服器就緒")

	var servers []*gonet.Server
	group, groupCtx := errgroup.WithContext(context.Background())

	if cfg.Lobby.Enabled {
		lobbyReg := packet.NewRegistry(log)
		handler.RegisterLobby(lobbyReg, deps)
		lobby, err := gonet.NewServer("lobby", cfg.Lobby.BindAddress, lobbyReg, params, log)
		if err != nil {
			return fmt.Errorf("lobby server: %w", err)
		}
		servers = append(servers, lobby)
		group.Go(lobby.Serve)
		printReady(fmt.Sprintf("大廳伺服器 %s", lobby.Addr()))
	}
	if cfg.Ranch.Enabled {
		ranchReg := packet.NewRegistry(log)
		handler.RegisterRanch(ranchReg, deps)
		ranch, err := gonet.NewServer("ranch", cfg.Ranch.BindAddress, ranchReg, params, log)
		if err != nil {
			return fmt.Errorf("ranch server: %w", err)
		}
		servers = append(servers, ranch)
		group.Go(ranch.Serve)
		printReady(fmt.Sprintf("牧場伺服器 %s", ranch.Addr()))
	}
	if len(servers) == 0 {
		return fmt.Errorf("no server role enabled")
	}
	fmt.Println()

	// 8. Wait for shutdown
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-shutdownCh:
		log.Info("收到關閉信號", zap.String("signal", sig.String()))
	case <-groupCtx.Done():
	}

	for _, s := range servers {
		s.Shutdown()
	}
	if err := group.Wait(); err != nil {
		return err
	}
	log.Info("伺服器已停止")
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
