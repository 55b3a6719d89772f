package hufblob_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/arloliu/hufblob"
	"github.com/arloliu/hufblob/errs"
)

// ExampleCompress demonstrates a round trip through an artifact.
func ExampleCompress() {
	artifact, err := hufblob.CompressString("abb")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("artifact: %x\n", artifact)

	text, err := hufblob.DecompressString(artifact)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("restored: %s\n", text)

	// Output:
	// artifact: 0000000302586c4c
	// restored: abb
}

// ExampleDecompress shows how to tell the error kinds apart.
func ExampleDecompress() {
	_, err := hufblob.Decompress([]byte{0x00, 0x00, 0x00, 0x0A})
	fmt.Println(errors.Is(err, errs.ErrTruncated))

	_, err = hufblob.Decompress([]byte{0x00, 0x00, 0x00, 0x01, 0x09, 0x00})
	fmt.Println(errors.Is(err, errs.ErrCorrupt))

	// Output:
	// true
	// true
}

// ExampleInspect prints the code table embedded in an artifact.
func ExampleInspect() {
	artifact, err := hufblob.CompressString("abb")
	if err != nil {
		log.Fatal(err)
	}

	info, err := hufblob.Inspect(artifact)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("length=%d tree=%d payload=%d padding=%d\n",
		info.OriginalLength, info.TreeBits, info.PayloadBits, info.Padding)

	// Output:
	// length=3 tree=19 payload=3 padding=2
}
