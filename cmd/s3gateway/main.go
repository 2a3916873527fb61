package main

import (
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/briarcliff-cloud/s3gateway/api"
	"github.com/briarcliff-cloud/s3gateway/common"
)

// Version, VersionPrerelease, BuildStamp and GitHash are populated at
// build time via -ldflags.
var (
	Version           = "dev"
	VersionPrerelease = ""
	BuildStamp        = "unknown"
	GitHash           = "unknown"
)

func main() {
	configPath := flag.String("config", "config/config.json", "path to the gateway's JSON configuration file")
	flag.Parse()

	f, err := os.Open(*configPath)
	if err != nil {
		log.Fatalf("failed to open configuration file %s: %s", *configPath, err)
	}
	defer f.Close()

	config, err := common.ReadConfig(f)
	if err != nil {
		log.Fatalf("failed to read configuration: %s", err)
	}

	if config.Debug {
		log.SetLevel(log.DebugLevel)
	} else if level, lerr := log.ParseLevel(config.LogLevel); lerr == nil {
		log.SetLevel(level)
	}

	config.Version = common.Version{
		Version:           Version,
		VersionPrerelease: VersionPrerelease,
		BuildStamp:        BuildStamp,
		GitHash:           GitHash,
	}

	log.Infof("starting s3gateway %s (%s)", config.Version.Version, config.Version.GitHash)

	if err := api.NewServer(config); err != nil {
		log.Fatalf("server exited: %s", err)
	}
}
