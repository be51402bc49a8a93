// Command uniquewords prints the unique words of a text file, one per line, sorted.
//
// Usage:
//
//	uniquewords [file]
//
// The file defaults to WORDS_FILE, or sample.txt in the working directory.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/beka-birhanu/maze-words/config"
	logger "github.com/beka-birhanu/maze-words/infrastruture/log"
	"github.com/beka-birhanu/maze-words/words"
)

func main() {
	flag.Parse()

	wordsLogger, _ := logger.New("WORDS", config.ColorMagenta, os.Stderr)

	path := inputPath(config.Envs.WordsFile, flag.Args())
	unique, err := words.ExtractFile(path)
	if err != nil {
		wordsLogger.Error(fmt.Sprintf("Extracting words: %v", err))
		os.Exit(1)
	}

	if err := words.Write(os.Stdout, unique); err != nil {
		wordsLogger.Error(fmt.Sprintf("Writing words: %v", err))
		os.Exit(1)
	}
}

// inputPath picks the file to read: the first argument, else the configured file,
// else sample.txt in the working directory.
func inputPath(configured string, args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if configured != "" {
		return configured
	}
	return words.DefaultFilename
}
