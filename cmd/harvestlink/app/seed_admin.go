package app

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/harvestlink/harvestlink/internal/app/storage"
	"github.com/harvestlink/harvestlink/internal/config"
	"github.com/harvestlink/harvestlink/internal/service"
)

func newSeedAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create or reset an administrator account",
		Long: `Create an administrator account, or promote and reset an existing account
with the same email. The password is read from the terminal, or from STDIN
when STDIN is not a terminal.

The command uses the --config option to connect to the database.`,
		RunE: runSeedAdmin,
	}

	cmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")
	cmd.Flags().String("email", "", "Administrator email (required)")
	cmd.Flags().String("first-name", "Store", "Administrator first name")
	cmd.Flags().String("last-name", "Admin", "Administrator last name")
	cmd.Flags().String("phone", "", "Administrator phone number")
	for _, name := range []string{"config", "email"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
	return cmd
}

func runSeedAdmin(cmd *cobra.Command, _ []string) error {
	in := service.RegisterInput{}
	var configPath string
	for flag, dst := range map[string]*string{
		"config":     &configPath,
		"email":      &in.Email,
		"first-name": &in.FirstName,
		"last-name":  &in.LastName,
		"phone":      &in.Phone,
	} {
		value, err := cmd.Flags().GetString(flag)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", flag, err)
		}
		*dst = value
	}

	cfg, err := config.LoadConfig(config.WithConfigPath(configPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.GetStorageType() != config.StorageTypeDatabase {
		return fmt.Errorf("seed-admin requires %q storage", config.StorageTypeDatabase)
	}

	in.Password, err = readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	factory, err := storage.NewStorageFactory(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}
	defer factory.Cleanup()

	svc, err := factory.CreateService(ctx, storage.ServiceDeps{})
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	admin, err := svc.EnsureAdmin(ctx, in)
	if err != nil {
		return fmt.Errorf("failed to seed administrator: %w", err)
	}

	slog.Info("Administrator ready", "user_id", admin.ID, "email", admin.Email)
	return nil
}

// readPassword prompts on a terminal without echo and otherwise reads the first line of in
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(prompt, "Password: ")
		password, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return checkPassword(string(password))
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return checkPassword(line)
}

func checkPassword(password string) (string, error) {
	password = strings.TrimRight(password, "\r\n")
	if strings.TrimSpace(password) == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}
