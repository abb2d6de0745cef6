// Package main provides the swimbase command line interface.
package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/swimbase/internal/config"
	"github.com/yourusername/swimbase/internal/logger"
	"github.com/yourusername/swimbase/internal/metrics"
	"github.com/yourusername/swimbase/internal/models"
	"github.com/yourusername/swimbase/internal/service"
	"github.com/yourusername/swimbase/internal/standards"
)

const relayDateLayout = "2006-01-02"

var (
	configFile string
	appLog     *logrus.Logger
	cfg        *config.Config
	store      *service.Store

	relayEventType string
	relaySex       string
	relayCourse    string
	relayDate      string
	relayCount     int
	relayMinAge    int
	relayMaxAge    int
	relayExcluded  []string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")

	relaysCmd.Flags().StringVarP(&relayEventType, "event", "e", "4x50_FREE", "Relay event type")
	relaysCmd.Flags().StringVarP(&relaySex, "sex", "s", "X", "Relay sex: M, F or X")
	relaysCmd.Flags().StringVarP(&relayCourse, "course", "o", "SCY", "Course: SCY, SCM or LCM")
	relaysCmd.Flags().StringVarP(&relayDate, "date", "d", "", "Relay date (YYYY-MM-DD, default today)")
	relaysCmd.Flags().IntVarP(&relayCount, "relays", "n", 0, "Number of relays to build")
	relaysCmd.Flags().IntVar(&relayMinAge, "min-age", 0, "Minimum swimmer age")
	relaysCmd.Flags().IntVar(&relayMaxAge, "max-age", 0, "Maximum swimmer age")
	relaysCmd.Flags().StringSliceVarP(&relayExcluded, "exclude", "x", nil, "Swimmer ids to leave out")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(clubCmd)
	rootCmd.AddCommand(swimmerCmd)
	rootCmd.AddCommand(bestTimesCmd)
	rootCmd.AddCommand(relaysCmd)
}

var rootCmd = &cobra.Command{
	Use:   "swimbase",
	Short: "Query a swim meet results database",
	Long:  `Loads SDIF-style .cl2 meet result files into an in-memory database and answers swimmer, club, time standard and relay queries.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		appLog = logger.NewLogger(cfg.App.LogLevel)
		store = service.NewStore(cfg, appLog)

		if cfg.Metrics.Enabled {
			go serveMetrics(cfg.Metrics.Address)
		}
		return nil
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func serveMetrics(address string) {
	metrics.InitRegistry()
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	if err := http.ListenAndServe(address, mux); err != nil {
		appLog.WithError(err).Error("Metrics server stopped")
	}
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show database size and load statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := store.Stats()
		if err != nil {
			return err
		}
		loadStats, err := store.LoadStats()
		if err != nil {
			return err
		}

		fmt.Println("Database:")
		fmt.Printf("  Clubs:        %d\n", stats.Clubs)
		fmt.Printf("  Swimmers:     %d\n", stats.Swimmers)
		fmt.Printf("  Meets:        %d\n", stats.Meets)
		fmt.Printf("  Meet results: %d\n", stats.MeetResults)
		fmt.Println("Load:")
		fmt.Printf("  Files read:    %d\n", loadStats.FilesRead)
		fmt.Printf("  Rows read:     %d\n", loadStats.RowsProcessed)
		fmt.Printf("  Rows skipped:  %d\n", loadStats.SkippedTotal())
		fmt.Printf("  Load duration: %s\n", loadStats.LoadDuration)
		return nil
	},
}

var clubCmd = &cobra.Command{
	Use:   "club <team-code>",
	Short: "Show a club and its roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clubs := service.NewClubService(store, appLog)
		club, err := clubs.GetClub(args[0])
		if err != nil {
			return err
		}
		swimmers, err := clubs.GetClubSwimmers(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s/%s)\n", club.FullName, club.LSC, club.TeamCode)
		fmt.Printf("Swimmers: %d\n\n", len(swimmers))
		for _, s := range swimmers {
			minAge, maxAge := s.AgeRange(time.Now())
			age := fmt.Sprintf("%d", minAge)
			if maxAge != minAge {
				age = fmt.Sprintf("%d-%d", minAge, maxAge)
			}
			fmt.Printf("  %-30s %-14s age %s\n", s.FullName(), s.LongID, age)
		}
		return nil
	},
}

var swimmerCmd = &cobra.Command{
	Use:   "swimmer <long-id>",
	Short: "Show one swimmer's record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		swimmers := service.NewSwimmerService(store, appLog, cacheTTL())
		swimmer, err := swimmers.GetSwimmer(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Name:      %s\n", swimmer.FullName())
		if swimmer.PreferredFirstName != "" {
			fmt.Printf("Preferred: %s\n", swimmer.PreferredFirstName)
		}
		fmt.Printf("Sex:       %s\n", swimmer.Sex.Name())
		if swimmer.Club != nil {
			fmt.Printf("Club:      %s (%s)\n", swimmer.Club.FullName, swimmer.Club.TeamCode)
		}
		if !swimmer.Birthday.IsZero() {
			fmt.Printf("Birthday:  %s\n", swimmer.Birthday.Format(relayDateLayout))
		} else {
			minBirth, maxBirth := swimmer.BirthdayRange()
			fmt.Printf("Born:      %s to %s\n", minBirth.Format(relayDateLayout), maxBirth.Format(relayDateLayout))
		}
		fmt.Printf("Swims:     %d (most recent %s)\n",
			len(swimmer.MeetResults), swimmer.DateOfMostRecentSwim().Format(relayDateLayout))

		history, err := swimmers.TimeHistory(args[0])
		if err != nil {
			return err
		}
		fmt.Println("\nHistory:")
		for _, r := range history {
			fmt.Printf("  %s  %s  %s  %s\n",
				r.DateOfSwim.Format(relayDateLayout), r.Event, r.Session.Name(), r.FinalTime)
		}
		return nil
	},
}

var bestTimesCmd = &cobra.Command{
	Use:   "best-times <long-id>",
	Short: "Show a swimmer's best time in every event swum",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		swimmers := service.NewSwimmerService(store, appLog, cacheTTL())
		stds := service.NewStandardsService(store)

		swimmer, err := swimmers.GetSwimmer(args[0])
		if err != nil {
			return err
		}
		best, err := swimmers.BestTimes(args[0])
		if err != nil {
			return err
		}

		minAge, _ := swimmer.AgeRange(time.Now())
		fmt.Printf("Best times for %s:\n", swimmer.FullName())
		for _, r := range best {
			line := fmt.Sprintf("  %s  %8s", r.Event, r.FinalTime)
			if std, ok, err := stds.BestStandard(r.FinalTime, r.Event, minAge, swimmer.Sex); err == nil && ok {
				line += fmt.Sprintf("  [%s]", std.Short())
			}
			fmt.Println(line)
		}
		return nil
	},
}

var relaysCmd = &cobra.Command{
	Use:   "relays <team-code>",
	Short: "Build the fastest relays for a club",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := service.RelayParams{
			ClubCode:    args[0],
			EventType:   relayEventType,
			Sex:         relaySex,
			Course:      relayCourse,
			NumRelays:   relayCount,
			MinAge:      relayMinAge,
			MaxAge:      relayMaxAge,
			ExcludedIDs: relayExcluded,
		}
		if relayDate != "" {
			date, err := time.Parse(relayDateLayout, relayDate)
			if err != nil {
				return fmt.Errorf("%w: date %q, want YYYY-MM-DD", models.ErrInvalidInput, relayDate)
			}
			params.RelayDate = date
		}

		relays := service.NewRelayService(store, appLog)
		got, err := relays.GenerateRelays(params)
		if err != nil {
			return err
		}

		for i, r := range got {
			fmt.Printf("Relay %c (%s %s):\n", 'A'+i, relayEventType, relaySex)
			if len(r.Swimmers) == 0 {
				fmt.Println("  not enough swimmers")
				continue
			}
			for leg, s := range r.Swimmers {
				fmt.Printf("  Leg %d: %s\n", leg+1, s.FullName())
			}
			fmt.Printf("  Time: %s%s\n", r.TotalTime, formatStandards(r.Standards))
		}
		return nil
	},
}

func formatStandards(stds []standards.Standard) string {
	if len(stds) == 0 {
		return ""
	}
	return fmt.Sprintf("  [%s]", stds[len(stds)-1].Short())
}

func cacheTTL() time.Duration {
	return time.Duration(cfg.Service.BestTimeCacheTTLSeconds) * time.Second
}
