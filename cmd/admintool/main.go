// Command admintool is the operator-side companion to the server: it lists
// accounts, creates the initial administrator, and resets the administrator
// credential. It talks straight to the account store; credentials always go
// through the password hasher.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/arleti/materials-system/internal/core/domain"
	"github.com/arleti/materials-system/internal/core/ports"
	"github.com/arleti/materials-system/internal/infrastructure/crypto"
	mongodb "github.com/arleti/materials-system/internal/infrastructure/db/mongo"
	"github.com/arleti/materials-system/internal/pkg/config"
	"github.com/arleti/materials-system/pkg/logger"
)

const usage = `usage: admintool <command> [flags]

commands:
  list          print all accounts with their approval status
  create-admin  create the administrator account if none exists
  reset-admin   replace the administrator password
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := mongodb.NewAccountRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	hasher := crypto.NewBcryptHasher(cfg.Auth.BcryptCost)

	switch os.Args[1] {
	case "list":
		err = runList(ctx, repo)
	case "create-admin":
		err = runCreateAdmin(ctx, repo, hasher, os.Args[2:])
	case "reset-admin":
		err = runResetAdmin(ctx, repo, hasher, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("command failed")
	}
}

func runList(ctx context.Context, repo *mongodb.MongoAccountRepository) error {
	admin, err := repo.FindAdmin(ctx)
	if err != nil && !errors.Is(err, domain.ErrAdminNotFound) {
		return err
	}
	workers, err := repo.ListWorkers(ctx)
	if err != nil {
		return err
	}

	if admin == nil && len(workers) == 0 {
		fmt.Println("no accounts in the database")
		return nil
	}
	if admin != nil {
		printAccount(admin)
	} else {
		fmt.Println("WARNING: no administrator account exists (run create-admin)")
	}
	for _, w := range workers {
		printAccount(w)
	}
	return nil
}

func printAccount(a *domain.Account) {
	state := "pending"
	if a.Status == domain.StatusActive {
		state = "active"
	}
	fmt.Printf("%-26s %-32s %-8s %-8s %s\n",
		a.ID, a.Email, a.Role, state, a.CreatedAt.Format(time.RFC3339))
}

func runCreateAdmin(ctx context.Context, repo *mongodb.MongoAccountRepository, hasher ports.PasswordHasher, args []string) error {
	fs := flag.NewFlagSet("create-admin", flag.ExitOnError)
	email := fs.String("email", "", "administrator email (required)")
	password := fs.String("password", "", "administrator password (required)")
	_ = fs.Parse(args)
	if *email == "" || *password == "" {
		return errors.New("both -email and -password are required")
	}

	if existing, err := repo.FindAdmin(ctx); err == nil {
		return fmt.Errorf("administrator already exists: %s", existing.Email)
	} else if !errors.Is(err, domain.ErrAdminNotFound) {
		return err
	}

	hash, err := hasher.Hash(*password)
	if err != nil {
		return err
	}
	created, err := repo.Create(ctx, &domain.Account{
		Email:          *email,
		CredentialHash: hash,
		Role:           domain.RoleAdmin,
		Status:         domain.StatusActive,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("administrator created: %s (id %s)\n", created.Email, created.ID)
	return nil
}

func runResetAdmin(ctx context.Context, repo *mongodb.MongoAccountRepository, hasher ports.PasswordHasher, args []string) error {
	fs := flag.NewFlagSet("reset-admin", flag.ExitOnError)
	password := fs.String("password", "", "new administrator password (required)")
	_ = fs.Parse(args)
	if *password == "" {
		return errors.New("-password is required")
	}

	admin, err := repo.FindAdmin(ctx)
	if err != nil {
		return err
	}

	hash, err := hasher.Hash(*password)
	if err != nil {
		return err
	}
	if err := repo.UpdateCredential(ctx, admin.ID, hash); err != nil {
		return err
	}

	fmt.Printf("administrator password reset for %s\n", admin.Email)
	return nil
}
