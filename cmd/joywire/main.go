package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/joywire/joywire/internal/config"
	"github.com/joywire/joywire/internal/log"
)

const description = "Offline codec tooling for the Joy-Con / Pro Controller wire protocol: " +
	"decode captured subcommand frames, inspect SPI flash dumps and manage user calibration profiles."

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("joywire"),
		kong.Description(description),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to setup logger:", err)
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i, a := range args {
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("JOYWIRE_CONFIG")
}

// configCandidatePaths lists the config files to try, most specific first.
func configCandidatePaths(userCfg string) (jsonPaths, yamlPaths, tomlPaths []string) {
	var bases []string
	if userCfg != "" {
		bases = append(bases, userCfg)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		bases = append(bases, dir+"/joywire/config")
	}
	bases = append(bases, "joywire")

	for _, b := range bases {
		if userCfg != "" && b == userCfg {
			// An explicit --config path is tried against every loader.
			jsonPaths = append(jsonPaths, b)
			yamlPaths = append(yamlPaths, b)
			tomlPaths = append(tomlPaths, b)
			continue
		}
		jsonPaths = append(jsonPaths, b+".json")
		yamlPaths = append(yamlPaths, b+".yaml", b+".yml")
		tomlPaths = append(tomlPaths, b+".toml")
	}
	return jsonPaths, yamlPaths, tomlPaths
}
