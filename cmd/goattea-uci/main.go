// Command goattea-uci is the UCI entry point: it wires an opening book
// and a perft result cache into the protocol handler and runs the main
// loop against stdin/stdout.
package main

import (
	"flag"
	"log"

	"github.com/reynagenesisti-create/goattea/internal/book"
	"github.com/reynagenesisti-create/goattea/internal/perftcache"
	"github.com/reynagenesisti-create/goattea/internal/uci"
)

var (
	bookFile = flag.String("book", "", "path to a Polyglot (.bin) opening book")
	cacheDir = flag.String("perft-cache", "", "directory for the perft result cache (default: OS data dir)")
	noCache  = flag.Bool("no-perft-cache", false, "disable the perft result cache")
)

func main() {
	flag.Parse()

	var b *book.Book
	if *bookFile != "" {
		loaded, err := book.LoadPolyglot(*bookFile)
		if err != nil {
			log.Printf("warning: failed to load opening book %s: %v", *bookFile, err)
		} else {
			b = loaded
			log.Printf("opening book loaded: %s (%d positions)", *bookFile, b.Size())
		}
	}

	var cache *perftcache.Cache
	if !*noCache {
		dir := *cacheDir
		if dir == "" {
			var err error
			dir, err = perftcache.DefaultDir()
			if err != nil {
				log.Printf("warning: perft cache disabled: %v", err)
			}
		}
		if dir != "" {
			opened, err := perftcache.Open(dir)
			if err != nil {
				log.Printf("warning: perft cache disabled: %v", err)
			} else {
				cache = opened
				defer cache.Close()
			}
		}
	}

	protocol := uci.New(b, cache)
	protocol.Run()
}
