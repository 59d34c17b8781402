package main

import (
	"flag"
	"log"

	"github.com/printfarm/printfarm-backend/cmd"
)

// Values injected at build time
var (
	apiVersion = "dev"
)

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run migrations")
	shouldRunServer := flag.Bool("server", false, "Run server")
	shouldRunWorker := flag.Bool("worker", false, "Run the printer sync worker")
	flag.Parse()

	compiledConfig := cmd.CompiledConfig{
		Version: apiVersion,
	}

	if !*shouldRunMigrations && !*shouldRunServer && !*shouldRunWorker {
		flag.Usage()
		return
	}

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}

	if *shouldRunServer {
		if err := cmd.RunServer(compiledConfig); err != nil {
			log.Fatal(err)
		}
	}

	if *shouldRunWorker {
		if err := cmd.RunWorker(compiledConfig); err != nil {
			log.Fatal(err)
		}
	}
}
