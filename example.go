/*
 * a basic example for pushfix usage
 */
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pushfix/pushfix/hwm"
	"github.com/pushfix/pushfix/pb"
	"github.com/pushfix/pushfix/push"
)

func main() {
	var (
		id   uint32
		seq  uint64
		name hwm.Buffer
	)

	// describe the message: {1: uint32, 2: uint64, 3: string}
	fm := pb.NewFieldMap()
	fm.AddUint32("id", 1, &id)
	fm.AddUint64("seq", 2, &seq)
	fm.AddHwmString("name", 3, &name)

	// build the parser graph
	p := push.NewParser(pb.NewMessage("example", fm))
	if p == nil {
		fmt.Fprintln(os.Stderr, "could not build the parser graph")
		os.Exit(1)
	}
	p.Activate(nil)

	// push stdin through it, whatever the chunk sizes
	if _, err := io.Copy(p, os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		os.Exit(1)
	}
	if p.Eof() != push.SUCCESS {
		fmt.Fprintln(os.Stderr, "parse error:", p.Err())
		os.Exit(1)
	}

	fmt.Printf("id=%d seq=%d name=%q\n", id, seq, name.String())
}
