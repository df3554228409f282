package main

import (
	"flag"
	"log"
	"strings"

	"github.com/BurntSushi/toml"

	"tpchtable/config"
)

var (
	operation = flag.String("op", "create", "create/delete/show, default is create")
	cfgPath   = flag.String("cfg", "", "config path")
	threads   = flag.Int("threads", 8, "threads")
)

func main() {
	flag.Parse()

	var cfg config.Config
	if _, err := toml.DecodeFile(*cfgPath, &cfg); err != nil {
		log.Fatalf("Failed to load config %s: %v", *cfgPath, err)
	}
	if err := config.Normalize(&cfg); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	if err := config.Validate(&cfg); err != nil {
		log.Fatalf("%v", err)
	}

	switch strings.ToLower(*operation) {
	case "delete":
		if err := DeleteAllFiles(&cfg); err != nil {
			log.Fatalf("Failed to delete files: %v", err)
		}
	case "show":
		if err := ShowFiles(&cfg); err != nil {
			log.Fatalf("Failed to show files: %v", err)
		}
	case "create":
		if err := GenerateTables(&cfg, *threads); err != nil {
			log.Fatalf("Failed to generate tables: %v", err)
		}
	default:
		log.Fatalf("Unknown operation: %s", *operation)
	}
}
