// Command maze prints a randomly generated maze, X for walls and spaces for passages.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/beka-birhanu/maze-words/config"
	logger "github.com/beka-birhanu/maze-words/infrastruture/log"
	"github.com/beka-birhanu/maze-words/maze"
	"github.com/sirupsen/logrus"
)

func main() {
	width := flag.Int("width", config.Envs.MazeWidth, "number of maze columns")
	height := flag.Int("height", config.Envs.MazeHeight, "number of maze rows")
	seed := flag.Int64("seed", 0, "random seed; 0 uses the process-wide source")
	flag.Parse()

	mazeLogger, _ := logger.New("MAZE", config.ColorCyan, os.Stderr)

	var src maze.Source
	if *seed != 0 {
		src = maze.NewSeededSource(*seed)
	}

	m, err := maze.New(*width, *height, src)
	if err != nil {
		mazeLogger.WithFields(logrus.Fields{
			"width": *width, "height": *height,
		}).Errorf("Generating maze: %v", err)
		os.Exit(1)
	}
	fmt.Print(m)
}
