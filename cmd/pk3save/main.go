// Command pk3save is a CLI wrapper around the pk3save codec core:
// inspecting, injecting into, and round-trip-checking Generation-3 save
// files, plus converting Generation-1/2 box Pokémon to PK3 records.
//
// Usage:
//
//	pk3save <command> [options]
//
// Commands:
//
//	extract     List every occupied PC box slot and its validity
//	inject      Write one or more PK3 records into a save's PC boxes
//	roundtrip   Byte-exact no-op round trip check
//	convert12   Convert a Gen-1/2 save's box Pokémon to standalone PK3 files
//	text        Encode or decode a fixed-width Pokémon text field
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	ilog "github.com/JohnDeved/pk3save/internal/log"
)

var version = "dev"

type globalOptions struct {
	Version func() `short:"V" long:"version" description:"Print version and exit"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable debug logging"`
}

func main() {
	var globals globalOptions
	globals.Version = func() {
		fmt.Printf("pk3save %s\n", version)
		os.Exit(0)
	}

	level := zerolog.InfoLevel
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "--verbose" {
			level = zerolog.DebugLevel
		}
	}
	ilog.SetLogger(ilog.NewZerologAdapter(zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)))

	parser := flags.NewParser(&globals, flags.Default)
	parser.Name = "pk3save"
	parser.LongDescription = "A toolkit for reading and modifying Generation-3 Pokémon save files"

	addExtractCommand(parser)
	addInjectCommand(parser)
	addRoundtripCommand(parser)
	addConvert12Command(parser)
	addTextCommand(parser)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			if flagsErr.Type == flags.ErrCommandRequired {
				parser.WriteHelp(os.Stderr)
				os.Exit(1)
			}
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
