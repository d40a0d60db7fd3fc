// Command pk3wasmhost runs a user-supplied WebAssembly nickname filter
// plugin against every occupied PC box slot in a Gen-3 save. A plugin
// is any WASM module exporting:
//
//	alloc(size i32) -> ptr i32
//	filter(ptr i32, len i32) -> packed i64   // high 32 bits: ptr, low 32 bits: len
//
// The host writes the slot's decoded nickname into the plugin's linear
// memory, calls filter, and reads back the (possibly rewritten)
// nickname. This is an extension point for collection managers that
// want custom nickname redaction or normalization rules without a Go
// plugin ABI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/JohnDeved/pk3save/box"
	ilog "github.com/JohnDeved/pk3save/internal/log"
	"github.com/JohnDeved/pk3save/save"
	"github.com/JohnDeved/pk3save/vault"
)

func main() {
	savePath := flag.String("save", "", "Gen-3 save file to scan")
	pluginPath := flag.String("plugin", "", "WASM nickname filter plugin")
	flag.Parse()

	if *savePath == "" || *pluginPath == "" {
		fmt.Fprintln(os.Stderr, "usage: pk3wasmhost -save <save.sav> -plugin <filter.wasm>")
		os.Exit(1)
	}

	if err := run(*savePath, *pluginPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(savePath, pluginPath string) error {
	raw, err := os.ReadFile(savePath)
	if err != nil {
		return fmt.Errorf("read save: %w", err)
	}
	s, err := save.Load(raw)
	if err != nil {
		return fmt.Errorf("load save: %w", err)
	}

	region := make([]byte, 0, 9*save.SectionDataSize)
	for id := uint16(5); id <= 13; id++ {
		data, err := s.Active.DataRegion(id)
		if err != nil {
			return err
		}
		region = append(region, data...)
	}
	entries, err := box.Extract(region[:box.RegionSize])
	if err != nil {
		return fmt.Errorf("extract boxes: %w", err)
	}

	ctx := context.Background()
	runtime := wazero.NewRuntime(ctx)
	defer runtime.Close(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, runtime)

	wasmBytes, err := os.ReadFile(pluginPath)
	if err != nil {
		return fmt.Errorf("read plugin: %w", err)
	}
	module, err := runtime.Instantiate(ctx, wasmBytes)
	if err != nil {
		return fmt.Errorf("instantiate plugin: %w", err)
	}
	defer module.Close(ctx)

	plugin, err := newNicknameFilter(module)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.Empty {
			continue
		}
		v := vault.BuildRecord(e.Record)
		filtered, err := plugin.Filter(ctx, v.Nickname)
		if err != nil {
			ilog.Warn("plugin filter failed", ilog.F("box", e.Box), ilog.F("slot", e.Slot), ilog.F("err", err.Error()))
			continue
		}
		fmt.Printf("box %2d slot %2d: %q -> %q\n", e.Box, e.Slot, v.Nickname, filtered)
	}
	return nil
}
