// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/uvasm/asm"
	"github.com/ezrec/uvasm/listing"
)

func main() {
	var output string
	var list bool
	var test bool
	var verbose bool

	flag.StringVar(&output, "o", "", "Write machine code to a binary file")
	flag.BoolVar(&list, "l", false, "Print the instruction and label tables")
	flag.BoolVar(&test, "t", false, "Print the detailed report")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: usage: uvasm [options] <input.asm>", os.Args[0])
	}

	input := flag.Arg(0)
	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	assembler := &asm.Assembler{Verbose: verbose}
	res, err := assembler.Assemble(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	for _, diag := range res.Diags {
		fmt.Fprintf(os.Stderr, "%v: %v\n", input, diag)
	}
	if !res.OK() {
		os.Exit(1)
	}

	switch {
	case test:
		fmt.Println(listing.Report(res))
	case list:
		fmt.Println(listing.Instructions(res))
		fmt.Print(listing.Labels(res))
	default:
		fmt.Println(listing.Hex(res))
	}

	if len(output) != 0 {
		err = os.WriteFile(output, res.Bytes(), 0o644)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}
}
