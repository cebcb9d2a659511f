/*
 * Copyright © 2025 ObjectRocket, All rights reserved.
 */

// Command orockctl inspects an ObjectRocket instance from the terminal.
//
// The API key is read from the OBJECTROCKET_API_KEY environment variable
// (a .env file in the working directory is honored) or from a YAML config
// file passed with -config.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	objectrocket "github.com/objectrocket/objectrocket-go"
	"github.com/objectrocket/objectrocket-go/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	configFlag  = flag.String("config", "", "Path to a YAML config file")
	debugFlag   = flag.Bool("debug", false, "Log outbound requests")
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: orockctl [flags] <command> [args]

Commands:
  databases                List databases
  collections <db> <name>  Show stats for a collection
  status               Show instance status
  spaceusage           Show space utilization
  logs                 Show instance logs
  acls                 List access rules

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		info := objectrocket.GetVersionInfo()
		fmt.Printf("orockctl version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		os.Exit(0)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*debugFlag {
		logger = logger.Level(zerolog.InfoLevel)
	}

	cfg := objectrocket.ConfigFromEnv()
	if *configFlag != "" {
		fileCfg, err := objectrocket.LoadConfig(*configFlag)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = fileCfg
	}

	opts := []objectrocket.Option{objectrocket.WithLogger(logger)}
	if *debugFlag {
		opts = append(opts, objectrocket.WithCurlDebug())
	}

	client, err := objectrocket.New(cfg, opts...)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create client")
	}

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := run(ctx, client, flag.Args()); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}

func run(ctx context.Context, client *objectrocket.Client, args []string) error {
	switch args[0] {
	case "databases":
		dbs, err := client.ListDatabases(ctx, nil)
		if err != nil {
			return err
		}
		for _, db := range dbs {
			fmt.Println(db.Name)
		}
		return nil

	case "collections":
		if len(args) < 3 {
			return fmt.Errorf("collections requires a database and a collection name")
		}
		dbs, err := client.ListDatabases(ctx, &models.DatabaseFilter{Name: args[1]})
		if err != nil {
			return err
		}
		if len(dbs) == 0 {
			return fmt.Errorf("database %q not found", args[1])
		}
		stats, err := dbs[0].Collection(args[2]).Stats(ctx)
		if err != nil {
			return err
		}
		return printJSON(stats)

	case "status":
		status, err := client.Status(ctx, false)
		if err != nil {
			return err
		}
		return printJSON(status)

	case "spaceusage":
		usage, err := client.SpaceUsage(ctx)
		if err != nil {
			return err
		}
		return printJSON(usage)

	case "logs":
		entries, err := client.Logs(ctx)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if e.Timestamp != nil {
				fmt.Printf("%s [%s] %s\n", e.Timestamp, e.Level, e.Message)
				continue
			}
			fmt.Printf("[%s] %s\n", e.Level, e.Message)
		}
		return nil

	case "acls":
		acls, err := client.ListACLs(ctx, nil)
		if err != nil {
			return err
		}
		for _, acl := range acls {
			fmt.Printf("%s\t%s\n", acl.CIDRMask, acl.Description)
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printJSON(v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(raw))
	return nil
}
