// Command patternlock-render replays a pattern script against a recognizer
// and renders the final board as a PNG image.
//
// Usage:
//
//	patternlock-render -script unlock.json -out board.png
//	patternlock-render -trace 0,4,8,5 -status wrong -out wrong.png
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/phanxgames/patternlock"
	"github.com/phanxgames/patternlock/ggrender"
)

func main() {
	scriptPath := flag.String("script", "", "JSON replay script")
	trace := flag.String("trace", "", "comma-separated node indices to draw, e.g. 0,4,8")
	outPath := flag.String("out", "board.png", "output PNG path")
	width := flag.Float64("width", patternlock.DefaultWidth, "board width in board units")
	size := flag.Int("size", 0, "output image side in pixels (0 = board width)")
	allowCross := flag.Bool("allow-cross", false, "disable the pass-through rule")
	status := flag.String("status", "normal", "status hint: normal, right or wrong")
	verbose := flag.Bool("v", false, "log recognizer events to stderr")
	flag.Parse()

	if *verbose {
		patternlock.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	script, err := loadScript(*scriptPath, *trace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	st, ok := patternlock.ParseStatus(*status)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown status %q\n", *status)
		os.Exit(2)
	}

	rec := patternlock.NewRecognizer(patternlock.Config{
		Width:      *width,
		AllowCross: *allowCross,
	})
	defer rec.Close()
	rec.SetStatus(st)

	res, err := script.Replay(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	for i, pw := range res.Passwords {
		fmt.Printf("stroke %d: %s\n", i+1, pw)
	}

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	if err := ggrender.WritePNG(f, res.Final, ggrender.Options{Size: *size}); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "error closing %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	fmt.Printf("board → %s\n", *outPath)
}

// loadScript reads the script file, or builds a one-step trace script from
// the -trace flag.
func loadScript(path, trace string) (*patternlock.Script, error) {
	switch {
	case path != "" && trace != "":
		return nil, fmt.Errorf("use either -script or -trace, not both")
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read script: %w", err)
		}
		return patternlock.LoadScript(data)
	case trace != "":
		var nodes []int
		for _, part := range strings.Split(trace, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("trace: %w", err)
			}
			nodes = append(nodes, n)
		}
		return patternlock.NewTraceScript(nodes)
	default:
		return nil, fmt.Errorf("one of -script or -trace is required")
	}
}
