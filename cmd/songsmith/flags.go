package main

import "github.com/urfave/cli/v3"

var (
	configFile string
	corpusPath string
	stateDir   string
	modeName   string
	logLevel   string
	logFormat  string
	debug      bool
)

const (
	envCorpus   = "SONGSMITH_CORPUS"
	envStateDir = "SONGSMITH_STATE_DIR"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to config.yaml",
			Value:       configPath(),
			Destination: &configFile,
		},
	}
}

func corpusFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "corpus",
			Aliases:     []string{"c"},
			Usage:       "lyrics corpus: a directory of .txt songs, a .json song list, or a text file",
			Sources:     cli.EnvVars(envCorpus),
			Destination: &corpusPath,
		},
	}
}

func modelFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "mode",
			Aliases:     []string{"m"},
			Usage:       "model order (unigram, bigram)",
			Value:       "bigram",
			Destination: &modeName,
		},
		&cli.StringFlag{
			Name:        "state-dir",
			Usage:       "directory holding trained model snapshots",
			Sources:     cli.EnvVars(envStateDir),
			Destination: &stateDir,
		},
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (auto, pretty, json, text)",
			Value:       "auto",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}
