package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"

	"github.com/JohnDeved/pk3save/gen12"
	"github.com/JohnDeved/pk3save/pccs"
	"github.com/JohnDeved/pk3save/sizenorm"
)

type convert12Command struct {
	Output string `short:"o" long:"output" description:"Output directory for converted PK3 files" required:"true"`
	Args   struct {
		File string `positional-arg-name:"save.gb" description:"Gen-1/2 save file to convert" required:"true"`
	} `positional-args:"yes"`
}

func (c *convert12Command) Execute(args []string) error {
	raw, err := os.ReadFile(c.Args.File)
	if err != nil {
		return fmt.Errorf("read save: %w", err)
	}

	normalized, err := sizenorm.Normalize(raw, sizenorm.TargetGen12)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}
	kind := sizenorm.Detect(normalized)
	if kind != sizenorm.Gen1 && kind != sizenorm.Gen2 {
		return fmt.Errorf("not a Gen-1/2 save (detected %s)", kind)
	}

	records, err := gen12.Parse(normalized, kind)
	if err != nil {
		return fmt.Errorf("parse boxes: %w", err)
	}

	if err := os.MkdirAll(c.Output, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, p := range records {
		converted := pccs.Convert(p, false, 2)
		name := fmt.Sprintf("box%02d_slot%02d.pk3", p.Box, p.Slot)
		path := filepath.Join(c.Output, name)
		if err := os.WriteFile(path, converted.Emit(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	fmt.Printf("converted %d records from %s (%s) to %s\n", len(records), c.Args.File, kind, c.Output)
	return nil
}

func addConvert12Command(parser *flags.Parser) {
	_, err := parser.AddCommand("convert12",
		"Convert a Gen-1/2 save's box Pokémon to standalone PK3 files",
		"Normalizes and parses a Gen-1 or Gen-2 save's PC boxes, converts "+
			"every occupied slot to a PK3 record under the PCCS rules, and "+
			"writes each as a standalone 80-byte file.",
		&convert12Command{})
	if err != nil {
		panic(err)
	}
}
