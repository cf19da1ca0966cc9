package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dm-vev/shaftgen/server"
	"github.com/dm-vev/shaftgen/server/block"
	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world"
)

func main() {
	path := flag.String("config", "config.toml", "path to the TOML or YAML configuration file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	log := slog.Default()
	if err := run(*path, log); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

// run generates the entrance configured in the file at the path passed and
// prints a summary of the outcome.
func run(path string, log *slog.Logger) error {
	uc, err := server.LoadUserConfig(path)
	if err != nil {
		return err
	}
	centre, facing, v, err := uc.Placement()
	if err != nil {
		return err
	}
	terrain, err := uc.Sampler()
	if err != nil {
		return err
	}
	conf, err := uc.Config(log)
	if err != nil {
		return err
	}
	srv := conf.New()
	defer func() {
		if err := srv.Close(); err != nil {
			log.Error(err.Error())
		}
	}()

	e, err := srv.Entrance(centre, facing, v)
	if err != nil {
		return err
	}
	chunks := world.ChunksIn(e.Piece().Box)
	snap := world.Snapshot(terrain, chunks...)
	region := world.NewBuffer(cube.Range{-64, 319}, world.Ground(snap, block.Stone{}, block.Air{}), chunks...)
	res, err := srv.Generate(e, snap, region)
	if err != nil {
		return err
	}

	fmt.Printf("%v mineshaft entrance at %v facing %v\n", e.Variant().DisplayName(), e.Centre(), e.Facing())
	if !res.Tunnel {
		fmt.Println("no surface opening found, nothing generated")
		return nil
	}
	fmt.Printf("tunnel: %v, length %v, mouth at %v (reach %v)\n", res.Direction, res.Length, res.Mouth, res.Reach)
	fmt.Printf("blocks written: %v in %v chunks, fingerprint %016x\n", res.Writes(), res.Chunks, res.Fingerprint())
	if pos, d, ok := e.Opening(); ok {
		fmt.Printf("mineshaft continues at %v towards %v\n", pos, d)
	}

	if uc.Output.Journal == "" {
		return nil
	}
	f, err := os.Create(uc.Output.Journal)
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	defer f.Close()
	if err := res.Journal.Export(f); err != nil {
		return fmt.Errorf("export journal: %w", err)
	}
	log.Info("exported journal", "path", uc.Output.Journal, "writes", res.Writes())
	return nil
}
