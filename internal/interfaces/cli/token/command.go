package token

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/flyoffice/directory/internal/domain/permission"
	"github.com/flyoffice/directory/internal/infrastructure/auth"
	"github.com/flyoffice/directory/internal/infrastructure/config"
)

var (
	env        string
	configPath string
	subject    string
	role       string
	ttl        time.Duration
)

// NewCommand issues staff tokens signed with the configured secret. Production
// tokens come from the identity service; this is for local use and tests.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a staff bearer token",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVar(&subject, "staff-id", "", "Staff id placed in the token subject (required)")
	cmd.Flags().StringVar(&role, "role", string(permission.RoleEditor), "Role label")
	cmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("staff-id")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if !permission.NormalizeRole(role).IsKnown() {
		return fmt.Errorf("unknown role %q", role)
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	token, err := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.Issuer).
		Generate(subject, permission.NormalizeRole(role).String(), ttl)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
