package main

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero/api"
)

// nicknameFilter calls a loaded WASM module's alloc/filter exports to
// transform a decoded nickname string.
type nicknameFilter struct {
	memory api.Memory
	alloc  api.Function
	filter api.Function
}

func newNicknameFilter(module api.Module) (*nicknameFilter, error) {
	alloc := module.ExportedFunction("alloc")
	if alloc == nil {
		return nil, fmt.Errorf("plugin does not export alloc(size) -> ptr")
	}
	filter := module.ExportedFunction("filter")
	if filter == nil {
		return nil, fmt.Errorf("plugin does not export filter(ptr, len) -> packed")
	}
	memory := module.Memory()
	if memory == nil {
		return nil, fmt.Errorf("plugin does not export linear memory")
	}
	return &nicknameFilter{memory: memory, alloc: alloc, filter: filter}, nil
}

// Filter writes nickname into the plugin's memory, invokes filter, and
// reads back the (ptr, len)-addressed result.
func (n *nicknameFilter) Filter(ctx context.Context, nickname string) (string, error) {
	input := []byte(nickname)

	allocated, err := n.alloc.Call(ctx, uint64(len(input)))
	if err != nil {
		return "", fmt.Errorf("alloc: %w", err)
	}
	inputPtr := uint32(allocated[0])

	if !n.memory.Write(inputPtr, input) {
		return "", fmt.Errorf("write input out of plugin memory bounds")
	}

	results, err := n.filter.Call(ctx, uint64(inputPtr), uint64(len(input)))
	if err != nil {
		return "", fmt.Errorf("filter: %w", err)
	}

	packed := results[0]
	outPtr := uint32(packed >> 32)
	outLen := uint32(packed & 0xFFFFFFFF)

	out, ok := n.memory.Read(outPtr, outLen)
	if !ok {
		return "", fmt.Errorf("read result out of plugin memory bounds")
	}
	// Copy out: the returned slice aliases plugin memory, which a
	// subsequent alloc/filter call may reuse or overwrite.
	result := make([]byte, len(out))
	copy(result, out)
	return string(result), nil
}
