// Command seed provisions user accounts for the SIGA server. Passwords are
// read from the terminal (or from the -password flag for scripted runs) and
// only the bcrypt hash ever reaches the store.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/term"

	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/config"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/repomanager"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {

	var (
		username = flag.String("username", "", "username of the account to provision")
		role     = flag.String("role", "admin", "account role: admin or coach")
		name     = flag.String("name", "", "display name of the account")
		password = flag.String("password", "", "password (omit to be prompted on the terminal)")
		dsn      = flag.String("d", "", "database DSN (defaults to DATABASE_DSN or the server default)")
		reset    = flag.Bool("reset", false, "delete all users and recreate only this one")
	)
	flag.Parse()

	if *username == "" {
		return fmt.Errorf("missing -username")
	}
	if *name == "" {
		*name = *username
	}

	pwd := *password
	if pwd == "" {
		var err error
		pwd, err = promptPassword(*username)
		if err != nil {
			return err
		}
	}

	cfg := &config.Config{}
	cfg.LoadDefaults()
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		cfg.DatabaseDSN = v
	}
	if *dsn != "" {
		cfg.DatabaseDSN = *dsn
	}

	ctx := context.Background()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	seeder := services.NewSeedService(db, rm)
	seed := services.Seed{Username: *username, Password: pwd, Role: *role, Name: *name}

	if *reset {
		if err := seeder.ResetUsers(ctx, []services.Seed{seed}); err != nil {
			return err
		}
		fmt.Printf("users reset; created %q (%s)\n", *username, *role)
		return nil
	}

	_, created, err := seeder.EnsureUser(ctx, seed)
	if err != nil {
		return err
	}
	if created {
		fmt.Printf("created %q (%s)\n", *username, *role)
	} else {
		fmt.Printf("%q already exists, left unchanged\n", *username)
	}
	return nil
}

// promptPassword reads the password without echo when stdin is a terminal,
// falling back to a plain line read for piped input.
func promptPassword(username string) (string, error) {
	fmt.Fprintf(os.Stderr, "password for %q: ", username)

	if term.IsTerminal(int(syscall.Stdin)) {
		b, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
