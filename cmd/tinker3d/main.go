package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"tinker3d/internal/game"
	"tinker3d/internal/inspect"
	"tinker3d/internal/render"
)

func main() {
	scenePath := flag.String("scene", "", "scene file to open (defaults to the last opened scene)")
	pipelinePaths := flag.String("pipelines", "", "comma-separated pipeline asset paths")
	profileMode := flag.String("profile", "", "write a profile next to the binary: cpu or mem")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	// Pipeline-pinned inspectors resolve against whatever pipeline is
	// active when the lookup runs.
	inspect.SetActivePipeline(render.ActiveType)

	var pipelines []string
	if *pipelinePaths != "" {
		pipelines = strings.Split(*pipelinePaths, ",")
	}

	game.New(game.Config{
		ScenePath:     *scenePath,
		PipelinePaths: pipelines,
		Logger:        logger.Sugar(),
	}).Run()
}
