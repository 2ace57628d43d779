// Copyright 2021 Airbus Defence and Space
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/airbusgeo/geoapi"
	"github.com/airbusgeo/geoapi/catalog"
	"github.com/airbusgeo/geoapi/gcs"
	"github.com/airbusgeo/geoapi/internal/logger"
	"github.com/airbusgeo/geoapi/internal/report"
	"github.com/airbusgeo/godal"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var logLevel string
var logConsole bool
var blockSize string
var numCachedBlocks int
var anonymous bool
var format string
var dbPath string

var log zerolog.Logger

func init() {
	defaultLevel := os.Getenv("GEOAPI_LOG_LEVEL")
	if defaultLevel == "" {
		defaultLevel = "info"
	}
	pf := rootCommand.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", defaultLevel, "debug, info, warn or error (env GEOAPI_LOG_LEVEL)")
	pf.BoolVar(&logConsole, "log-console", false, "human readable logs instead of json")
	pf.StringVarP(&blockSize, "gs.blocksize", "b", "512k", "gs:// block size")
	pf.IntVarP(&numCachedBlocks, "gs.numblocks", "n", 512, "number of gs:// blocks to cache")
	pf.BoolVar(&anonymous, "gs.anonymous", false, "access gs:// buckets without credentials")
	pf.StringVarP(&format, "format", "f", "json", "output format: json or yaml")

	catalogCommand.PersistentFlags().StringVar(&dbPath, "db", "", "catalogue database file")
	_ = catalogCommand.MarkPersistentFlagRequired("db")

	catalogCommand.AddCommand(catalogAddCommand, catalogLsCommand, catalogShowCommand)
	rootCommand.AddCommand(infoCommand, catalogCommand)
}

func main() {
	err := rootCommand.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCommand = &cobra.Command{
	Use:           "geoapi",
	Short:         "describe raster datasets as ISO 19115 metadata records",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := report.ParseFormat(format); err != nil {
			return err
		}
		if numCachedBlocks < 1 {
			return fmt.Errorf("--gs.numblocks must be positive, got %d", numCachedBlocks)
		}
		log = logger.Build(logger.Config{Level: logLevel, Console: logConsole, Component: cmd.Name()}, cmd.ErrOrStderr())
		godal.RegisterAll()
		return nil
	},
}

// load registers the gs:// handler when name needs it and reads the
// metadata of name
func load(cmd *cobra.Command, name string) (*geoapi.RasterMetadata, error) {
	if gcs.IsRemote(name) {
		if b, o := gcs.Parse(name); b == "" || o == "" {
			return nil, fmt.Errorf("invalid gs:// uri %s", name)
		}
		opts := []gcs.Option{gcs.BlockSize(blockSize), gcs.NumCachedBlocks(numCachedBlocks)}
		if anonymous {
			opts = append(opts, gcs.Anonymous())
		}
		if err := gcs.Register(cmd.Context(), opts...); err != nil {
			return nil, fmt.Errorf("register gs:// handler: %w", err)
		}
	}
	md, err := geoapi.Load(name, geoapi.ErrLogger(geoapi.LogErrors(log.With().Str("dataset", name).Logger())))
	if err != nil {
		return nil, err
	}
	log.Debug().Str("dataset", name).Msg("loaded")
	return md, nil
}

func output(cmd *cobra.Command, v interface{}) error {
	buf, err := report.Marshal(report.Format(format), v)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(append(buf, '\n'))
	return err
}

var infoCommand = &cobra.Command{
	Use:   "info [flags] dataset...",
	Short: "print the metadata record of datasets",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records := make([]report.Record, 0, len(args))
		for _, name := range args {
			md, err := load(cmd, name)
			if err != nil {
				return err
			}
			records = append(records, report.From(md))
		}
		if len(records) == 1 {
			return output(cmd, records[0])
		}
		return output(cmd, records)
	},
}

var catalogCommand = &cobra.Command{
	Use:   "catalog",
	Short: "manage a catalogue of metadata records",
}

var catalogAddCommand = &cobra.Command{
	Use:   "add --db file dataset...",
	Short: "add the metadata records of datasets to the catalogue",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := catalog.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()
		for _, name := range args {
			md, err := load(cmd, name)
			if err != nil {
				return err
			}
			e, err := st.Put(cmd.Context(), name, md)
			if err != nil {
				return err
			}
			log.Info().Str("dataset", name).Str("id", e.ID.String()).Msg("added")
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.ID, name)
		}
		return nil
	},
}

var catalogLsCommand = &cobra.Command{
	Use:   "ls --db file",
	Short: "list the catalogue entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := catalog.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()
		entries, err := st.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
				e.ID, e.Created.Format(time.RFC3339), e.Source, e.Record.Title)
		}
		return nil
	},
}

var catalogShowCommand = &cobra.Command{
	Use:   "show --db file id",
	Short: "print a catalogue entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %s: %w", args[0], err)
		}
		st, err := catalog.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()
		e, err := st.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return output(cmd, e)
	},
}
