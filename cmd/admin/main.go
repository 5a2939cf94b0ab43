// Command admin manages administrator accounts from the terminal.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/Sourav2629/VibeTune-Music-Player/internal/repositories"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	app := &cli.Command{
		Name:  "admin",
		Usage: "Manage VibeTune administrator accounts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.env",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "make-admin",
				Usage:     "Grant admin privileges to a user by email",
				ArgsUsage: "<email>",
				Action:    makeAdmin,
			},
			{
				Name:      "check-admin",
				Usage:     "Show whether a user has admin privileges",
				ArgsUsage: "<email>",
				Action:    checkAdmin,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func makeAdmin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.Args().First()
	if email == "" {
		return cli.Exit("usage: admin make-admin <email>", 1)
	}

	db, err := connect(ctx, cmd.String("config"))
	if err != nil {
		return err
	}
	defer db.Close()

	user, err := repositories.NewUserWriteRepository(db).SetAdmin(ctx, email, true)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if user == nil {
		return cli.Exit(fmt.Sprintf("user with email %s not found", email), 1)
	}

	fmt.Printf("User %s (%s) is now an admin\n", user.Username, user.Email)
	return nil
}

func checkAdmin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.Args().First()
	if email == "" {
		return cli.Exit("usage: admin check-admin <email>", 1)
	}

	db, err := connect(ctx, cmd.String("config"))
	if err != nil {
		return err
	}
	defer db.Close()

	user, err := repositories.NewUserReadRepository(db).GetByUsernameOrEmail(ctx, nil, &email)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return cli.Exit(fmt.Sprintf("user with email %s not found", email), 1)
	}

	fmt.Printf("Username:  %s\n", user.Username)
	fmt.Printf("Email:     %s\n", user.Email)
	fmt.Printf("Admin:     %s\n", strconv.FormatBool(user.IsAdmin))
	fmt.Printf("Created:   %s\n", user.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// connect opens the same PostgreSQL database the server uses, reading
// connection settings from the environment.
func connect(ctx context.Context, configPath string) (*sqlx.DB, error) {
	_ = godotenv.Load(configPath)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	password := getEnv("POSTGRES_PASSWORD", "")
	if password == "" {
		return nil, fmt.Errorf("POSTGRES_PASSWORD is required")
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "vibetune"),
		password,
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_PORT", "5432"),
		getEnv("POSTGRES_DB", "vibetune"),
	)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	return db, nil
}
