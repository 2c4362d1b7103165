// SPDX-License-Identifier: MIT

package codec_test

import (
	"fmt"

	"github.com/katalvlaran/intmat/codec"
)

func ExampleParseString() {
	m, err := codec.ParseString("1 2\n3 4\n")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.Rows(), m.Cols())
	fmt.Print(m)
	// Output:
	// 2 2
	// [1, 2]
	// [3, 4]
}

func ExampleDumpString() {
	m, _ := codec.ParseString("5 6\n7 8")
	s, _ := codec.DumpString(m)
	fmt.Printf("%q\n", s)
	// Output:
	// "5 6 \n7 8 \n"
}
