package main

import (
	"flag"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/database/repository"
	"github.com/Samuel-Loga/Personal-Website/metal/kernel"
	"github.com/Samuel-Loga/Personal-Website/pkg/auth"
	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
)

// Provisions the admin account the API authenticates against. Run once per
// environment:
//
//	go run ./cli -username owner -password <plain> [-name "Display Name"]
//
// The email comes from ENV_APP_ADMIN_USER so the API and this command can
// never disagree about who the admin is.
func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password (plain text, hashed before storing)")
	name := flag.String("name", "", "display name")
	migrate := flag.Bool("migrate", false, "run schema migrations before provisioning")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "both -username and -password are required")
		os.Exit(1)
	}

	validate := portal.GetDefaultValidator()

	environment, err := kernel.Ignite("./.env", validate)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to read the .env file/values:", err)
		os.Exit(1)
	}

	conn := kernel.MakeDbConnection(environment)
	defer conn.Close()

	if *migrate {
		if err := conn.Sql().AutoMigrate(database.GetSchemaModels()...); err != nil {
			fmt.Fprintln(os.Stderr, "failed to migrate the schema:", err)
			os.Exit(1)
		}
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to hash the password:", err)
		os.Exit(1)
	}

	users := repository.Users{DB: conn}

	if existing := users.FindBy(environment.App.AdminUser); existing != nil {
		fmt.Printf("admin account [%s] already exists\n", existing.Email)
		return
	}

	user, err := users.Create(database.UsersAttrs{
		Username:     *username,
		DisplayName:  *name,
		Email:        environment.App.AdminUser,
		PasswordHash: hash,
		IsAdmin:      true,
	})

	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create the admin account:", err)
		os.Exit(1)
	}

	fmt.Printf("admin account [%s] created as @%s\n", user.Email, user.Username)
}
