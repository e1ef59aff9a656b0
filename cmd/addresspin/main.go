package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/addresspin/internal/config"
	"github.com/addresspin/internal/db"
	"github.com/addresspin/internal/gazetteer"
	"github.com/addresspin/internal/geo"
	"github.com/addresspin/internal/geocode"
	"github.com/addresspin/internal/logger"
	"github.com/addresspin/internal/match"
	"github.com/addresspin/internal/metrics"
	"github.com/addresspin/internal/normalize"
	"github.com/addresspin/internal/normalize/postal"
	"github.com/addresspin/internal/pipeline"
	"github.com/addresspin/internal/predict"
	"github.com/addresspin/internal/symspell"
	"github.com/addresspin/internal/web"
)

var useLibpostal bool

func main() {
	config.LoadEnv()

	rootCmd := &cobra.Command{
		Use:   "addresspin",
		Short: "Landmark-based geocoding for messy Indian addresses",
		Long:  `Resolves unstructured last-mile delivery addresses to coordinates using landmark extraction, gazetteer matching and positional offsets`,
	}
	rootCmd.PersistentFlags().BoolVar(&useLibpostal, "libpostal", false,
		"expand abbreviations with libpostal (requires the cgo library)")

	rootCmd.AddCommand(createServeCmd())
	rootCmd.AddCommand(createAnalyzeCmd())
	rootCmd.AddCommand(createLandmarksCmd())
	rootCmd.AddCommand(createStatsCmd())
	rootCmd.AddCommand(createPingCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// resolver bundles everything a command needs to process addresses.
type resolver struct {
	pipeline *pipeline.Pipeline
	store    *gazetteer.Store
	density  *geo.DensityIndex
	log      *zap.Logger
}

// buildResolver assembles the processing stack from configuration.
func buildResolver(ctx context.Context, cfg config.Config) (*resolver, error) {
	zlog, err := logger.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	var source gazetteer.Source
	switch {
	case cfg.UseDatabase:
		conn, err := db.NewConnection()
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		source = gazetteer.NewPostgresSource(conn.DB)
	case cfg.GazetteerPath != "":
		source = gazetteer.FileSource{Path: cfg.GazetteerPath}
	}

	store, err := gazetteer.NewStore(ctx, source, zlog)
	if err != nil {
		return nil, fmt.Errorf("load gazetteer: %w", err)
	}

	matcher := match.NewMatcher(store)
	matcher.SetThreshold(cfg.MatchThreshold)

	corrector := symspell.NewCorrectorFromVocabulary(nil,
		store.Snapshot().Vocabulary(), normalize.SpellingDictionary)

	normOpts := []normalize.Option{normalize.WithCorrector(corrector)}
	if useLibpostal {
		normOpts = append(normOpts, normalize.WithExpander(postal.New()))
	}
	if cfg.LocalityAliasPath != "" {
		aliases, err := gazetteer.LoadLocalityAliases(cfg.LocalityAliasPath)
		if err != nil {
			return nil, fmt.Errorf("load locality aliases: %w", err)
		}
		normOpts = append(normOpts, normalize.WithLocalityAliases(aliases))
	}

	density := geo.NewDensityIndex(geo.DefaultDensityResolution)
	if cfg.DeliveryHistoryPath != "" {
		n, err := gazetteer.LoadDeliveryHistory(cfg.DeliveryHistoryPath, density)
		if err != nil {
			return nil, fmt.Errorf("load delivery history: %w", err)
		}
		zlog.Info("delivery history loaded", zap.Int("points", n))
	}

	geocodeOpts := []geocode.Option{}
	if cfg.ExternalGeocoder {
		geocodeOpts = append(geocodeOpts, geocode.WithExternal(
			geocode.NewNominatimClient(cfg.NominatimURL, "addresspin/"+pipeline.Version, cfg.GeocodeTimeout)))
	}

	predictOpts := []predict.Option{}
	if cfg.PredictSeed != 0 {
		predictOpts = append(predictOpts, predict.WithSeed(cfg.PredictSeed))
	}

	pl := pipeline.New(matcher, zlog,
		pipeline.WithNormalizer(normalize.New(normOpts...)),
		pipeline.WithGeocoder(geocode.New(zlog, geocodeOpts...)),
		pipeline.WithPredictor(predict.New(predictOpts...)),
		pipeline.WithDensityIndex(density))

	return &resolver{pipeline: pl, store: store, density: density, log: zlog}, nil
}

// createServeCmd runs the HTTP API server
func createServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			ctx := cmd.Context()

			res, err := buildResolver(ctx, cfg)
			if err != nil {
				return err
			}
			defer res.log.Sync()

			if cfg.WatchGazetteer && cfg.GazetteerPath != "" && !cfg.UseDatabase {
				watcher := gazetteer.NewWatcher(res.store, cfg.GazetteerPath, res.log)
				go func() {
					if err := watcher.Start(ctx); err != nil {
						res.log.Warn("gazetteer watcher stopped", zap.Error(err))
					}
				}()
			}

			m := metrics.New()
			m.GazetteerLandmarks.Set(float64(res.store.Snapshot().Size()))

			webConfig := web.DefaultConfig()
			webConfig.Addr = cfg.Addr()
			server := web.NewServer(webConfig, web.Deps{
				Pipeline: res.pipeline,
				Store:    res.store,
				Density:  res.density,
				Metrics:  m,
				Log:      res.log,
			})
			return server.Start()
		},
	}
}

// createAnalyzeCmd resolves addresses from the command line
func createAnalyzeCmd() *cobra.Command {
	var city string
	var file string

	analyzeCmd := &cobra.Command{
		Use:   "analyze [address...]",
		Short: "Resolve one or more addresses and print JSON results",
		RunE: func(cmd *cobra.Command, args []string) error {
			addresses := args
			if file != "" {
				fromFile, err := readAddressFile(file)
				if err != nil {
					return err
				}
				addresses = append(addresses, fromFile...)
			}
			if len(addresses) == 0 {
				return fmt.Errorf("no addresses given: pass them as arguments or with --file")
			}

			cfg := config.FromEnv()
			ctx := cmd.Context()

			res, err := buildResolver(ctx, cfg)
			if err != nil {
				return err
			}
			defer res.log.Sync()

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			for _, address := range addresses {
				result := res.pipeline.Process(ctx, pipeline.Request{
					Address: address,
					City:    city,
				})
				if err := enc.Encode(result); err != nil {
					return err
				}
			}
			return nil
		},
	}
	analyzeCmd.Flags().StringVar(&city, "city", "", "city hint for gazetteer scoping")
	analyzeCmd.Flags().StringVar(&file, "file", "", "read addresses from a file, one per line")

	return analyzeCmd
}

// readAddressFile returns the non-empty lines of the file.
func readAddressFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var addresses []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			addresses = append(addresses, line)
		}
	}
	return addresses, scanner.Err()
}

// createLandmarksCmd inspects the loaded gazetteer
func createLandmarksCmd() *cobra.Command {
	var city string

	landmarksCmd := &cobra.Command{
		Use:   "landmarks",
		Short: "Print the loaded gazetteer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()

			res, err := buildResolver(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer res.log.Sync()

			snapshot := res.store.Snapshot()
			landmarks := snapshot.Landmarks
			if city != "" {
				landmarks = landmarks[:0:0]
				for _, lm := range snapshot.ByCity(city) {
					landmarks = append(landmarks, *lm)
				}
			}

			for _, lm := range landmarks {
				fmt.Printf("%-40s %-12s %-10s %9.4f %9.4f\n",
					lm.Name, lm.Category, lm.City, lm.Lat, lm.Lng)
			}
			fmt.Printf("\n%d landmarks, %d vocabulary terms\n",
				len(landmarks), len(snapshot.Vocabulary()))
			return nil
		},
	}
	landmarksCmd.Flags().StringVar(&city, "city", "", "filter by city")

	return landmarksCmd
}

// createStatsCmd prints gazetteer and configuration summary
func createStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print gazetteer statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()

			res, err := buildResolver(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer res.log.Sync()

			snapshot := res.store.Snapshot()
			fmt.Printf("Landmarks:   %d\n", snapshot.Size())
			fmt.Printf("Cities:      %d\n", len(snapshot.Cities()))
			fmt.Printf("Vocabulary:  %d terms\n", len(snapshot.Vocabulary()))
			fmt.Printf("Density:     %d cells\n", res.density.Size())
			fmt.Printf("Version:     %s\n", pipeline.Version)
			return nil
		},
	}
}

// createPingCmd tests database connectivity
func createPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Test database connectivity",
		Run: func(cmd *cobra.Command, args []string) {
			conn, err := db.NewConnection()
			if err != nil {
				log.Fatalf("Failed to connect to database: %v", err)
			}
			defer conn.Close()

			fmt.Println("Database connection successful!")

			var count int
			if err := conn.DB.QueryRow("SELECT COUNT(*) FROM landmarks").Scan(&count); err != nil {
				log.Printf("Error counting landmarks: %v", err)
			} else {
				fmt.Printf("Landmarks loaded: %d\n", count)
			}
		},
	}
}
