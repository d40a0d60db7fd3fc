//go:build js && wasm

// Command parser (js/wasm build) exposes the pk3save codec to a
// browser host via syscall/js: parsing a Gen-3 save's PC boxes into a
// JSON-serializable summary, and encoding/decoding Gen-3 text fields.
package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/JohnDeved/pk3save/box"
	"github.com/JohnDeved/pk3save/save"
	"github.com/JohnDeved/pk3save/text"
	"github.com/JohnDeved/pk3save/vault"
)

// boxSummary is the JSON shape handed back to JavaScript: one entry per
// non-empty PC box slot.
type boxSummary struct {
	Box         int    `json:"box"`
	Slot        int    `json:"slot"`
	Species     uint16 `json:"species"`
	Nickname    string `json:"nickname"`
	OTName      string `json:"otName"`
	Level       uint8  `json:"level"`
	Valid       bool   `json:"valid"`
}

type saveSummary struct {
	ActiveSlot  string       `json:"activeSlot"`
	SaveCounter uint32       `json:"saveCounter"`
	Boxes       []boxSummary `json:"boxes"`
}

func rejectWith(reject js.Value, stage string, err error) {
	msg, _ := json.Marshal(map[string]string{"error": stage, "details": err.Error()})
	reject.Invoke(js.ValueOf(string(msg)))
}

// parseBytes parses a Gen-3 save's raw bytes (a JS Uint8Array) and
// resolves a JSON string summarizing every occupied PC box slot.
func parseBytes(this js.Value, args []js.Value) interface{} {
	handler := js.FuncOf(func(this js.Value, promiseArgs []js.Value) interface{} {
		resolve, reject := promiseArgs[0], promiseArgs[1]

		go func() {
			defer func() {
				if r := recover(); r != nil {
					msg, _ := json.Marshal(map[string]any{"error": "panic during parsing", "details": r})
					reject.Invoke(js.ValueOf(string(msg)))
				}
			}()

			if len(args) < 1 || args[0].Type() != js.TypeObject {
				rejectWith(reject, "invalid save data", nil)
				return
			}
			jsArray := args[0]
			raw := make([]byte, jsArray.Get("length").Int())
			js.CopyBytesToGo(raw, jsArray)

			s, err := save.Load(raw)
			if err != nil {
				rejectWith(reject, "load save", err)
				return
			}

			region := make([]byte, 0, 9*save.SectionDataSize)
			for id := uint16(5); id <= 13; id++ {
				data, err := s.Active.DataRegion(id)
				if err != nil {
					rejectWith(reject, "read PC region", err)
					return
				}
				region = append(region, data...)
			}
			entries, err := box.Extract(region[:box.RegionSize])
			if err != nil {
				rejectWith(reject, "extract boxes", err)
				return
			}

			summary := saveSummary{SaveCounter: s.Active.Counter}
			if s.ActiveIsA {
				summary.ActiveSlot = "A"
			} else {
				summary.ActiveSlot = "B"
			}
			for _, e := range entries {
				if e.Empty {
					continue
				}
				v := vault.BuildRecord(e.Record)
				summary.Boxes = append(summary.Boxes, boxSummary{
					Box: e.Box, Slot: e.Slot, Species: v.Species,
					Nickname: v.Nickname, OTName: v.OTName, Level: v.Level, Valid: e.Checked,
				})
			}

			resultBytes, err := json.Marshal(summary)
			if err != nil {
				rejectWith(reject, "serialize result", err)
				return
			}
			resolve.Invoke(js.ValueOf(string(resultBytes)))
		}()

		return nil
	})

	promiseConstructor := js.Global().Get("Promise")
	return promiseConstructor.New(handler)
}

// encodeText converts a string to the Gen-3 character table's bytes.
func encodeText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("")
	}
	width := 10
	if len(args) >= 2 {
		width = args[1].Int()
	}
	encoded := text.Gen3.Encode(args[0].String(), width)
	jsArray := js.Global().Get("Uint8Array").New(len(encoded))
	js.CopyBytesToJS(jsArray, encoded)
	return jsArray
}

// decodeText converts Gen-3 character table bytes to a string.
func decodeText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeObject {
		return js.ValueOf("")
	}
	jsArray := args[0]
	data := make([]byte, jsArray.Get("length").Int())
	js.CopyBytesToGo(data, jsArray)
	return js.ValueOf(text.Gen3.Decode(data))
}

func getVersion(this js.Value, args []js.Value) interface{} {
	return js.ValueOf("2.0.0-go")
}

func main() {
	c := make(chan struct{})

	js.Global().Set("parseBytes", js.FuncOf(parseBytes))
	js.Global().Set("encodeText", js.FuncOf(encodeText))
	js.Global().Set("decodeText", js.FuncOf(decodeText))
	js.Global().Set("getVersion", js.FuncOf(getVersion))

	js.Global().Call("postMessage", map[string]any{
		"type":    "wasm-ready",
		"version": "2.0.0-go",
	})

	<-c
}
