package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	web "junglepark/internal/adapters/http"
	"junglepark/internal/adapters/notify"
	bannerStore "junglepark/internal/adapters/storage/banner"
	catalogStore "junglepark/internal/adapters/storage/catalog"
	notificationStore "junglepark/internal/adapters/storage/notification"
	settingsStore "junglepark/internal/adapters/storage/settings"
	userStore "junglepark/internal/adapters/storage/user"
	"junglepark/internal/application/orchestrators"
	"junglepark/internal/config"
	"junglepark/internal/i18n"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("JUNGLEPARK_CONFIG"))
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	slog.SetDefault(config.NewLogger(cfg.App.Env))

	users := userStore.NewJSONStore(cfg.Paths.Data)
	stores := &web.Stores{
		SettingsStore:     settingsStore.NewJSONStore(cfg.Paths.Data),
		UserStore:         users,
		MenuStore:         catalogStore.NewMenuJSONStore(cfg.Paths.Data),
		ProgramStore:      catalogStore.NewProgramJSONStore(cfg.Paths.Data),
		BannerStore:       bannerStore.NewJSONStore(cfg.Paths.Data),
		NotificationStore: notificationStore.NewJSONStore(cfg.Paths.Data),
	}

	// Seed the root administrator when no users exist yet
	seedDeps := orchestrators.SeedRootDeps{
		UserStore:  users,
		GenerateID: func() string { return uuid.New().String() },
	}
	if err := orchestrators.ExecuteSeedRoot(context.Background(), cfg.Seed.RootPassword, seedDeps); err != nil {
		log.Fatalf("failed to seed root user: %v", err)
	}

	translator, err := i18n.Load(cfg.Paths.Translations)
	if err != nil {
		log.Fatalf("failed to load translations: %v", err)
	}

	// Configure outbound notification channels
	var senders []notify.Sender
	if cfg.Telegram.Token != "" && cfg.Telegram.ChatID != 0 {
		tg, err := notify.NewTelegramSender(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			log.Fatalf("failed to configure telegram sender: %v", err)
		}
		senders = append(senders, tg)
		slog.Info("notify_channel_configured", "channel", "telegram")
	}
	if cfg.Resend.Key != "" && cfg.Resend.To != "" {
		senders = append(senders, notify.NewEmailSender(cfg.Resend.Key, cfg.Resend.From, cfg.Resend.To))
		slog.Info("notify_channel_configured", "channel", "resend")
	}
	switch len(senders) {
	case 0:
		web.SetNotifySender(notify.NewNoopSender())
		if cfg.IsProduction() {
			slog.Warn("no notification channel configured, submissions are only written to the log file")
		}
	case 1:
		web.SetNotifySender(senders[0])
	default:
		web.SetNotifySender(notify.NewMulti(senders...))
	}

	mux := web.NewMux(cfg.Paths.Static, cfg.App.SecretKey, cfg.IsProduction(), stores, translator)

	slog.Info("server_starting", "version", version, "addr", cfg.App.Addr, "env", cfg.App.Env)
	if err := http.ListenAndServe(cfg.App.Addr, mux); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
