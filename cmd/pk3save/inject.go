package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/natefinch/atomic"

	"github.com/JohnDeved/pk3save/box"
	"github.com/JohnDeved/pk3save/pk3"
	"github.com/JohnDeved/pk3save/save"
)

type injectCommand struct {
	Output  string   `short:"o" long:"output" description:"Output save file path (defaults to overwriting the input)"`
	Targets []string `short:"t" long:"target" description:"box:slot:pk3file target, may be repeated" required:"true"`
	Args    struct {
		File string `positional-arg-name:"save.sav" description:"Gen-3 save file to modify" required:"true"`
	} `positional-args:"yes"`
}

func (c *injectCommand) Execute(args []string) error {
	raw, err := os.ReadFile(c.Args.File)
	if err != nil {
		return fmt.Errorf("read save: %w", err)
	}

	s, err := save.Load(raw)
	if err != nil {
		return fmt.Errorf("load save: %w", err)
	}

	targets := make([]box.Target, 0, len(c.Targets))
	for _, spec := range c.Targets {
		target, err := parseTarget(spec)
		if err != nil {
			return fmt.Errorf("invalid target %q: %w", spec, err)
		}
		targets = append(targets, target)
	}

	out, err := s.Inject(targets)
	if err != nil {
		return fmt.Errorf("inject: %w", err)
	}

	dest := c.Output
	if dest == "" {
		dest = c.Args.File
	}
	if err := atomic.WriteFile(dest, bytes.NewReader(out)); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	fmt.Printf("wrote %d targets to %s\n", len(targets), dest)
	return nil
}

// parseTarget parses "box:slot:path-to-80-byte-pk3-file".
func parseTarget(spec string) (box.Target, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 {
		return box.Target{}, fmt.Errorf("expected box:slot:file, got %q", spec)
	}
	boxN, err := strconv.Atoi(parts[0])
	if err != nil {
		return box.Target{}, fmt.Errorf("bad box index: %w", err)
	}
	slotN, err := strconv.Atoi(parts[1])
	if err != nil {
		return box.Target{}, fmt.Errorf("bad slot index: %w", err)
	}
	data, err := os.ReadFile(parts[2])
	if err != nil {
		return box.Target{}, fmt.Errorf("read %s: %w", parts[2], err)
	}
	record, err := pk3.Parse(data)
	if err != nil {
		return box.Target{}, fmt.Errorf("parse pk3 record: %w", err)
	}
	return box.Target{Box: boxN, Slot: slotN, Record: record}, nil
}

func addInjectCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("inject",
		"Write one or more PK3 records into a save's PC boxes",
		"Loads a Gen-3 save, overwrites the named box slots with the given "+
			"80-byte PK3 records, bumps the active slot's save counter, and "+
			"writes the result atomically so a crash mid-write never corrupts "+
			"the input file.",
		&injectCommand{})
	if err != nil {
		panic(err)
	}
}
