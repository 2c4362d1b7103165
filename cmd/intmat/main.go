// SPDX-License-Identifier: MIT

// Command intmat loads integer matrices from text files, combines them and
// writes the result in the same format.
//
//	intmat [flags] <command> args...
//
// Commands:
//
//	sum A B                     A + B
//	sub A B                     A - B
//	product A B                 A * B
//	hadamard A B                element-wise A ∘ B
//	scale A k                   k * A
//	transpose A                 Aᵀ
//	identity n                  n×n identity
//	random rows cols min max    uniform values in [min, max] (-seed for repeatable output)
//	equal A B                   exit 0 when equal, 3 when different
//	show A                      bracketed rows, for humans
//	sample-config path          write the default JSON configuration
//
// Operands are file paths (".gz"/".zst" are decompressed) or "-" for stdin.
// Results go to stdout unless -o is given.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
