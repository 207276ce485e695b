// Command rootdump loads a .rootbasket fixture, decodes it against a small
// built-in demo reader tree, and prints the resulting column shapes and
// basic size/compression statistics. It is grounded on the teacher's
// examples/compress_demo/main.go, generalized from a single-codec demo
// into a driver.ReadData round trip.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rootreader/rootreader/basket"
	"github.com/rootreader/rootreader/driver"
	"github.com/rootreader/rootreader/reader"
)

func main() {
	path := flag.String("fixture", "", "path to a .rootbasket fixture file")
	branch := flag.String("branch", "int32", "demo branch shape to decode: int32, string, or seq")
	flag.Parse()

	if *path == "" {
		fmt.Println("rootdump: decode a .rootbasket fixture against a demo reader tree")
		fmt.Println("usage: rootdump -fixture path/to/file.rootbasket [-branch int32|string|seq]")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("read fixture: %v", err)
	}

	env, err := basket.Unmarshal(raw)
	if err != nil {
		log.Fatalf("unmarshal fixture: %v", err)
	}

	root := demoReader(*branch)

	fmt.Printf("fixture: %s\n", *path)
	fmt.Printf("compression: %s\n", env.Compression)
	fmt.Printf("events: %d\n", len(env.Offsets)-1)
	fmt.Printf("payload size: %d bytes\n", len(env.Data))

	data, err := driver.ReadData(env.Data, env.Offsets, root)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}

	fmt.Printf("decoded shape: %#v\n", data)
}

func demoReader(branch string) reader.Element {
	switch branch {
	case "string":
		return reader.NewTString("value")
	case "seq":
		return reader.NewSTLSeq("values", reader.NewInt32("value"), false)
	default:
		return reader.NewInt32("value")
	}
}
