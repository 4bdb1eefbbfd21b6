// Command admin runs maintenance tasks against the API database: issuing
// OAuth clients and retiring or purging catalog rows.
//
// Usage:
//
//	admin create-client -role admin [-id catalog-admin] [-secret s3cr3t]
//	admin retire-pizza -id 3
//	admin retire-size -id 2
//	admin purge-pizza -id 3
//	admin purge-size -id 2
//	admin purge-tokens
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/auth"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/config"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/database"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var errUsage = errors.New("usage: admin <create-client|retire-pizza|retire-size|purge-pizza|purge-size|purge-tokens> [flags]")

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using system environment variables")
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	conf, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	ctx := context.Background()
	db, err := database.InitDatabase(ctx, conf.Database())
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}

	if err := run(ctx, db, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, db *gorm.DB, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	catalog := services.NewCatalogService(db)
	command, rest := args[0], args[1:]
	switch command {
	case "create-client":
		return createClient(ctx, db, rest, out)
	case "retire-pizza":
		return withID(command, rest, func(id uint) error {
			if err := catalog.SoftDeletePizza(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(out, "pizza %d retired\n", id)
			return nil
		})
	case "retire-size":
		return withID(command, rest, func(id uint) error {
			if err := catalog.SoftDeleteSize(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(out, "pizza size %d retired\n", id)
			return nil
		})
	case "purge-pizza":
		return withID(command, rest, func(id uint) error {
			if err := catalog.HardDeletePizza(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(out, "pizza %d purged\n", id)
			return nil
		})
	case "purge-size":
		return withID(command, rest, func(id uint) error {
			if err := catalog.HardDeleteSize(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(out, "pizza size %d purged\n", id)
			return nil
		})
	case "purge-tokens":
		removed, err := auth.NewGormTokenStore(db).PurgeExpired(ctx, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d expired tokens removed\n", removed)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%w", command, errUsage)
	}
}

// withID parses the -id flag shared by the catalog commands.
func withID(command string, args []string, fn func(id uint) error) error {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	id := fs.Uint("id", 0, "row id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("%s: -id is required", command)
	}
	return fn(*id)
}

func createClient(ctx context.Context, db *gorm.DB, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("create-client", flag.ContinueOnError)
	role := fs.String("role", models.RoleAdmin, "owner role (admin or user)")
	clientID := fs.String("id", "", "client id (default <role>-client)")
	secret := fs.String("secret", "", "client secret (default random)")
	email := fs.String("email", "", "owner e-mail (default <role>@pizza.local)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *clientID == "" {
		*clientID = *role + "-client"
	}
	if *secret == "" {
		*secret = uuid.New().String()
	}
	if *email == "" {
		*email = *role + "@pizza.local"
	}

	user, err := services.NewUserService(db).EnsureUser(ctx, *email, "Owner of "+*clientID, *role)
	if err != nil {
		return err
	}

	clients := services.NewClientService(db)
	if _, err := clients.GetClientByID(ctx, *clientID); err == nil {
		return fmt.Errorf("client %q already exists", *clientID)
	}

	client := &models.OAuthClient{
		ID:         *clientID,
		Name:       fmt.Sprintf("%s client", *role),
		Domain:     "http://localhost",
		UserID:     user.ID,
		Scopes:     "catalog",
		GrantTypes: "client_credentials",
	}
	if err := clients.CreateClient(ctx, client, *secret); err != nil {
		return err
	}

	fmt.Fprintf(out, "OAuth client created for role '%s'\n", user.Role)
	fmt.Fprintf(out, "Client ID: %s\n", client.ID)
	fmt.Fprintf(out, "Client Secret: %s\n", *secret)
	fmt.Fprintf(out, "User ID: %d\n", user.ID)
	fmt.Fprintln(out, "\nRequest a token with:")
	fmt.Fprintf(out, "curl -X POST http://localhost:8080/oauth/token \\\n")
	fmt.Fprintf(out, "  -d 'grant_type=client_credentials' \\\n")
	fmt.Fprintf(out, "  -d 'client_id=%s' \\\n", client.ID)
	fmt.Fprintf(out, "  -d 'client_secret=%s'\n", *secret)
	return nil
}
