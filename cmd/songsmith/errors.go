package main

import "errors"

var errMissingCorpus = errors.New("--corpus is required unless " + envCorpus + " is set")
