package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/JohnDeved/pk3save/box"
	"github.com/JohnDeved/pk3save/save"
	"github.com/JohnDeved/pk3save/vault"
)

type extractCommand struct {
	Args struct {
		File string `positional-arg-name:"save.sav" description:"Gen-3 save file to read" required:"true"`
	} `positional-args:"yes"`
}

func (c *extractCommand) Execute(args []string) error {
	raw, err := os.ReadFile(c.Args.File)
	if err != nil {
		return fmt.Errorf("read save: %w", err)
	}

	s, err := save.Load(raw)
	if err != nil {
		return fmt.Errorf("load save: %w", err)
	}

	region, err := pcRegionOf(s)
	if err != nil {
		return err
	}
	entries, err := box.Extract(region[:box.RegionSize])
	if err != nil {
		return fmt.Errorf("extract boxes: %w", err)
	}

	fmt.Printf("%s: active slot %s, save_counter=%d\n", c.Args.File, activeSlotLabel(s), s.Active.Counter)
	for _, e := range entries {
		if e.Empty {
			continue
		}
		v := vault.BuildRecord(e.Record)
		fmt.Printf("box %2d slot %2d: species=%d nickname=%q valid=%t\n", e.Box, e.Slot, v.Species, v.Nickname, e.Checked)
	}
	return nil
}

func addExtractCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("extract",
		"List every occupied PC box slot and its validity",
		"Loads a Gen-3 save, elects the active slot, and lists every non-empty "+
			"PC box slot with its decoded species, nickname, and checksum validity.",
		&extractCommand{})
	if err != nil {
		panic(err)
	}
}
