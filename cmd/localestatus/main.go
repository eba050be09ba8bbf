package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"localestatus/internal/adapters/discord"
	"localestatus/internal/adapters/html"
	"localestatus/internal/application"
	"localestatus/internal/config"
	"localestatus/internal/infrastructure/database"
	"localestatus/internal/infrastructure/i18n"
	"localestatus/internal/infrastructure/locale"
	"localestatus/internal/infrastructure/mapping"
	"localestatus/pkg/tz"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit status. Deferred cleanups run before main
// exits with it.
func run(args []string) int {
	flags := pflag.NewFlagSet("localestatus", pflag.ContinueOnError)
	var (
		mode        = flags.String("mode", "status", "status | mapping")
		envFile     = flags.String("env-file", "", "fichier .env (défaut: .env, optionnel)")
		outDir      = flags.String("out", "", "répertoire de sortie (remplace OUTPUT_DIR)")
		locales     = flags.StringSlice("locales", nil, "locales à comparer (remplace LOCALES)")
		mappingFile = flags.String("mapping", "", "document de correspondance TOML (remplace MAPPING_FILE)")
	)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Printf("❌ Configuration invalide: %v", err)
		return 1
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if len(*locales) > 0 {
		cfg.Locales = *locales
		if err := cfg.Validate(); err != nil {
			log.Printf("❌ Configuration invalide: %v", err)
			return 1
		}
	}
	if *mappingFile != "" {
		cfg.MappingFile = *mappingFile
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	translator, err := i18n.NewTranslator(cfg.ReportLanguage)
	if err != nil {
		log.Printf("❌ %v", err)
		return 1
	}
	renderer, err := html.NewRenderer(cfg.OutputDir, cfg.ReportLanguage, translator)
	if err != nil {
		log.Printf("❌ %v", err)
		return 1
	}

	var clock func() time.Time
	if cfg.ReportShowDate {
		clock = tz.Clock(tz.Load(cfg.ReportTimezone))
	}

	switch strings.ToLower(*mode) {
	case "status":
		return runStatus(ctx, cfg, translator, renderer, clock)
	case "mapping":
		return runMapping(ctx, cfg, renderer, clock)
	default:
		log.Printf("❌ Mode inconnu: %q (status | mapping)", *mode)
		return 1
	}
}

func runStatus(ctx context.Context, cfg *config.Config, translator *i18n.Translator, renderer *html.Renderer, clock func() time.Time) int {
	if err := cfg.RequireLocales(); err != nil {
		log.Printf("❌ Configuration invalide: %v", err)
		return 1
	}

	opts := application.ReportOptions{
		Reference: cfg.ReferenceLocale,
		Locales:   cfg.Locales,
		Clock:     clock,
	}

	if cfg.DatabaseURL != "" {
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Printf("❌ Erreur lors des migrations: %v", err)
			return 1
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("❌ Erreur lors de l'initialisation de la base de données: %v", err)
			return 1
		}
		defer pool.Close()
		opts.Sink = database.NewStatusRepository(pool)
	}

	if cfg.DiscordWebhook != "" {
		notifier, err := discord.NewNotifier(cfg.DiscordWebhook)
		if err != nil {
			log.Printf("❌ %v", err)
			return 1
		}
		opts.Notifier = notifier
	}

	// The document cache lives for this run only.
	source := locale.NewSource(cfg.LocaleSource, cfg.Sources, cfg.HTTPTimeout)
	loader := locale.NewLoader(source, locale.NewCache(), translator.Language())

	svc := application.NewReportService(loader, renderer, opts)
	report, err := svc.Run(ctx)
	if report == nil {
		log.Printf("❌ Rapport non généré: %v", err)
		return 1
	}
	for _, l := range report.Table.Locales {
		if l.Unavailable {
			log.Printf("⚠️ %s: %s", l.Code, l.Reason)
		}
	}
	if err != nil {
		log.Printf("❌ Rapport écrit dans %s mais publication incomplète: %v", cfg.OutputDir, err)
		return 1
	}
	log.Printf("✅ Rapport disponible dans %s (run=%s)", cfg.OutputDir, report.RunID)
	return 0
}

func runMapping(ctx context.Context, cfg *config.Config, renderer *html.Renderer, clock func() time.Time) int {
	if cfg.MappingFile == "" {
		log.Printf("❌ Configuration invalide: MAPPING_FILE est requis en mode mapping")
		return 1
	}
	svc := application.NewMappingService(mapping.NewFileSource(), renderer, clock)
	if _, err := svc.Run(ctx, cfg.MappingFile); err != nil {
		log.Printf("❌ Page de correspondance non générée: %v", err)
		return 1
	}
	return 0
}
