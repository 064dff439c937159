// Command admin creates the first super-admin account, or re-activates an
// existing one with a new password. The password is read from the
// terminal without echo, or from stdin when it is not a terminal.
//
//	admin -email root@example.com -name Root [-d postgres://...]
package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/dmitrijs2005/storeadmin/internal/flagx"
	"github.com/dmitrijs2005/storeadmin/internal/server/config"
	"github.com/dmitrijs2005/storeadmin/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/storeadmin/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/term"
)

func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}

	fmt.Fprint(os.Stderr, "Repeat password: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}

	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}

func main() {

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("error loading .env: %v", err)
	}

	var email, name string
	fset := flag.NewFlagSet("admin", flag.ExitOnError)
	fset.StringVar(&email, "email", "", "super-admin email")
	fset.StringVar(&name, "name", "Administrator", "super-admin display name")
	_ = fset.Parse(flagx.FilterArgs(os.Args[1:], []string{"-email", "-name"}))

	if email == "" {
		log.Fatal("-email is required")
	}

	cfg := config.LoadConfig()
	ctx := context.Background()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	password, err := readPassword()
	if err != nil {
		log.Fatalf("reading password: %v", err)
	}

	admin, err := services.NewUserService(db, rm, cfg).BootstrapSuperAdmin(ctx, name, email, password)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Printf("super-admin %s <%s> ready (id %s)\n", admin.Name, admin.Email, admin.ID)
}
