package seed

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	airlineUsecases "github.com/flyoffice/directory/internal/application/airline/usecases"
	officeUsecases "github.com/flyoffice/directory/internal/application/office/usecases"
	"github.com/flyoffice/directory/internal/infrastructure/config"
	"github.com/flyoffice/directory/internal/infrastructure/database"
	"github.com/flyoffice/directory/internal/infrastructure/repository"
	"github.com/flyoffice/directory/internal/shared/biztime"
	"github.com/flyoffice/directory/internal/shared/db"
	"github.com/flyoffice/directory/internal/shared/logger"
)

var (
	env        string
	configPath string
	file       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load airlines and offices from a YAML file",
		Long:  `Create the airlines and offices listed in a seed file. Entries that already exist are skipped.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&file, "file", "f", "configs/seed/directory.yaml", "Seed file to load")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.IsDebug()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}
	log := logger.WithComponent("seed")

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	fixture, err := Load(f)
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	gdb := database.Get()
	airlineRepo := repository.NewAirlineRepository(gdb, log)
	officeRepo := repository.NewOfficeRepository(gdb, log)

	seeder := NewSeeder(
		airlineUsecases.NewCreateAirlineUseCase(airlineRepo, db.NewTransactionManager(gdb), log),
		officeUsecases.NewCreateOfficeUseCase(officeRepo, airlineRepo, log),
		log,
	)

	res, err := seeder.Apply(cmd.Context(), fixture)
	if err != nil {
		return err
	}

	log.Infow("seed completed",
		"airlines_created", res.AirlinesCreated,
		"airlines_skipped", res.AirlinesSkipped,
		"offices_created", res.OfficesCreated,
		"offices_skipped", res.OfficesSkipped)
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d airlines and %d offices (%d airlines skipped)\n",
		res.AirlinesCreated, res.OfficesCreated, res.AirlinesSkipped)
	return nil
}
