package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/lukaszgryglicki/pathview/internal/pathview"
)

func main() {
	pathview.Debug = os.Getenv("DEBUG") != ""
	log, err := pathview.NewLogger(pathview.Debug)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	pathview.SetLogger(log)

	opts := pathview.Options{
		Scene: os.Getenv("SCENE"),
		Paths: os.Getenv("PATHS"),
		Out:   os.Getenv("OUT"),
	}
	if ss := os.Getenv("SUPERSAMPLE"); ss != "" {
		n, err := strconv.Atoi(ss)
		if err != nil {
			log.Errorf("bad SUPERSAMPLE %q: %v", ss, err)
			os.Exit(1)
		}
		opts.Supersample = n
	}

	if err := pathview.Run(opts); err != nil {
		var mi *pathview.MissingInputError
		if errors.As(err, &mi) {
			log.Errorf("input %q not found; run the simulation first", mi.Resource)
		} else {
			log.Errorf("Error: %v", err)
		}
		_ = log.Sync()
		os.Exit(1)
	}
}
