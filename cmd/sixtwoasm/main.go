// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/markvandergon/sixtwoasm/asm"
	"github.com/markvandergon/sixtwoasm/internal/shell"
)

var (
	assembleFile string
	outputFile   string
	verbose      bool
)

func init() {
	flag.StringVar(&assembleFile, "a", "", "assemble file and write its binary output")
	flag.StringVar(&outputFile, "o", "", "output filename for -a (default: input with .bin extension)")
	flag.BoolVar(&verbose, "v", false, "log verbose assembly progress to stderr")
	flag.CommandLine.Usage = func() {
		fmt.Println("Usage: sixtwoasm [-a file [-o file]] [script] ..\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	if assembleFile != "" {
		os.Exit(runAssemble(assembleFile, outputFile, verbose))
	}

	sh := shell.New()

	args := flag.Args()
	if len(args) > 0 {
		for _, filename := range args {
			file, err := os.Open(filename)
			if err != nil {
				exitOnError(err)
			}
			sh.Run(file, os.Stdout, false)
			file.Close()
		}
		return
	}

	sh.Run(os.Stdin, os.Stdout, true)
}

func runAssemble(filename, out string, verbose bool) int {
	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}

	var a *asm.Assembly
	if verbose {
		a, err = asm.AssembleVerbose(string(source), os.Stderr, asm.Verbose|asm.Trace)
	} else {
		a, err = asm.Assemble(string(source))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to assemble '%s': %v\n", filename, err)
		return 1
	}

	if out == "" {
		ext := filepath.Ext(filename)
		out = filename[:len(filename)-len(ext)] + ".bin"
	}
	if err := os.WriteFile(out, a.Code, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}

	fmt.Printf("Assembled %d bytes to '%s'.\n", len(a.Code), out)
	return 0
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
