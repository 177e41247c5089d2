// Package cli is the fitctl command line: schema migration, the preset
// tracks catalog and a signed in client for routines and the calendar.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/2beens/fitjournal/internal/auth"
	"github.com/2beens/fitjournal/internal/config"
	"github.com/2beens/fitjournal/internal/db"
	"github.com/2beens/fitjournal/internal/docstore"
	"github.com/2beens/fitjournal/internal/profile"
)

const offlineAnnotation = "offline"

// App holds what the commands run against. Commands that need the
// document store open it from the config unless Docs is already set.
type App struct {
	Docs     docstore.Store
	Accounts *auth.Service
	Location *time.Location
	// Exec runs raw SQL, used by migrate
	Exec  func(ctx context.Context, sql string) error
	Close func()

	env        string
	configPath string
	email      string
	password   string
}

func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fitctl",
		Short:         "fitjournal admin and client tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[offlineAnnotation] == "true" || app.Docs != nil {
				return nil
			}
			return app.open(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Close != nil {
				app.Close()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.env, "env", "development", "environment [prod | production | dev | development]")
	flags.StringVar(&app.configPath, "config", "./config.toml", "path for the TOML config file")
	flags.StringVar(&app.email, "email", os.Getenv("FJ_EMAIL"), "account email (or FJ_EMAIL)")
	flags.StringVar(&app.password, "password", os.Getenv("FJ_PASSWORD"), "account password (or FJ_PASSWORD)")

	rootCmd.AddCommand(newMigrateCmd(app))
	rootCmd.AddCommand(newTracksCmd())
	rootCmd.AddCommand(newRoutinesCmd(app))
	rootCmd.AddCommand(newCalendarCmd(app))
	rootCmd.AddCommand(newOneRMCmd())

	return rootCmd
}

func (a *App) open(ctx context.Context) error {
	cfg, err := config.Load(a.env, a.configPath)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     os.Getenv("POSTGRES_USER"),
		DBPassword: os.Getenv("POSTGRES_PASSWORD"),
	})
	if err != nil {
		return fmt.Errorf("new db pool: %w", err)
	}

	a.Docs = docstore.NewPsqlStore(pool)
	// credentials are only checked here, no redis session is opened
	a.Accounts = auth.NewAuthService(auth.DefaultTTL, a.Docs, profile.NewStore(a.Docs), nil)
	a.Location = loc
	a.Exec = func(ctx context.Context, sql string) error {
		_, err := pool.Exec(ctx, sql)
		return err
	}
	a.Close = pool.Close
	return nil
}

// signIn checks the credentials and starts a session for the account.
// The returned session must be closed.
func (a *App) signIn(ctx context.Context) (*profile.Session, profile.User, error) {
	if a.email == "" || a.password == "" {
		return nil, profile.User{}, errors.New("--email and --password (or FJ_EMAIL and FJ_PASSWORD) are required")
	}

	user, err := a.Accounts.Authenticate(ctx, auth.Credentials{Email: a.email, Password: a.password})
	if err != nil {
		return nil, profile.User{}, err
	}

	identity := auth.NewIdentity()
	session := profile.NewSession(identity, profile.NewStore(a.Docs))
	if err := session.Start(ctx); err != nil {
		return nil, profile.User{}, err
	}
	identity.SignIn(user, "")

	current := session.User()
	if current == nil {
		session.Close()
		return nil, profile.User{}, errors.New("sign in failed")
	}
	return session, *current, nil
}

func (a *App) location() *time.Location {
	if a.Location == nil {
		return time.UTC
	}
	return a.Location
}
