package main

import (
	"flag"
	"log"

	cfg "github.com/zetherabarter/Rec-Backend2/internal/config"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/zetherabarter/Rec-Backend2/pkg/deployments"
)

func main() {

	envfile := flag.String("envfile", "./config/local.env", "path to an env file to load")
	flag.Parse()

	loader, err := cfg.NewEnvConfig(envfile)

	if err != nil {
		log.Fatal(err)
	}

	url, err := loader.GetPostgresUrl()

	if err != nil {
		log.Fatal(err)
	}

	err = deployments.RunMigrations(url)

	if err != nil {
		log.Fatalf("failed to execute migrations - %v", err)
	}

	log.Println("migrations executed!")
}
