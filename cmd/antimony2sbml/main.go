// Command antimony2sbml translates Antimony reaction-network models to SBML
// using the native libAntimony library. It takes a single input file, or a
// TOML config for batch translation.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	antimony "github.com/antimony-lang/antimony-go/pkg/antimony"
	"github.com/antimony-lang/antimony-go/pkg/antimony/logging"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML batch config; overrides positional input")
		output     = flag.String("o", "", "output file (default: input with .xml extension, or stdout with -o -)")
		moduleName = flag.String("module", "", "module to translate (default: main module)")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(context.Background(), log, *configPath, *output, *moduleName, flag.Args()); err != nil {
		if errors.Is(err, antimony.ErrNotBuilt) {
			fmt.Fprintln(os.Stderr, "antimony2sbml: native libAntimony bindings not built into this binary")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "antimony2sbml: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log logging.Logger, configPath, output, moduleName string, args []string) error {
	log.Debug(ctx, "starting", "version", antimony.WrapperVersion())

	jobs, searchDirs, err := plan(configPath, output, moduleName, args)
	if err != nil {
		return err
	}

	s, err := antimony.Open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			log.Warn(ctx, "session close", "err", cerr)
		}
	}()

	for _, dir := range searchDirs {
		if err := s.AddDirectory(dir); err != nil {
			return err
		}
	}

	for _, job := range jobs {
		if err := translate(ctx, log, s, job); err != nil {
			return fmt.Errorf("%s: %w", job.Input, err)
		}
	}
	return nil
}

func plan(configPath, output, moduleName string, args []string) ([]ModelJob, []string, error) {
	if configPath != "" {
		cfg, err := LoadBatchConfig(configPath)
		if err != nil {
			return nil, nil, err
		}
		return cfg.Models, cfg.SearchDirs, nil
	}

	if len(args) != 1 {
		return nil, nil, errors.New("expected exactly one input file (or -config)")
	}
	in := args[0]
	if output == "" {
		output = strings.TrimSuffix(in, ".ant") + ".xml"
	}
	return []ModelJob{{Input: in, Output: output, Module: moduleName}}, nil, nil
}

func translate(ctx context.Context, log logging.Logger, s *antimony.Session, job ModelJob) error {
	if _, err := s.LoadAntimonyFile(job.Input); err != nil {
		return err
	}

	var (
		m   *antimony.Module
		err error
	)
	if job.Module != "" {
		m, err = s.Module(job.Module)
	} else {
		m, err = s.MainModule()
	}
	if err != nil {
		return err
	}

	reactions, err := m.ReactionCount()
	if err != nil {
		return err
	}
	species, err := m.SymbolCount(antimony.AllSpecies)
	if err != nil {
		return err
	}
	log.Info(ctx, "loaded model",
		"module", m.Name(), "reactions", reactions, "species", species)

	sbml, err := m.SBML()
	if err != nil {
		return err
	}

	if job.Output == "-" {
		_, err = os.Stdout.WriteString(sbml)
		return err
	}
	if err := os.WriteFile(job.Output, []byte(sbml), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info(ctx, "wrote SBML", "output", job.Output, "bytes", len(sbml))
	return nil
}
