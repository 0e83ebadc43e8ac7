package unescape_test

import (
	"fmt"

	"github.com/jcorbin/unescape"
)

func ExampleDecode() {
	decoded, err := unescape.Decode(`\r\n\tHello\u{21B5}`)
	if err != nil {
		fmt.Println("decode failed:", err)
		return
	}
	fmt.Printf("%q\n", decoded)
	// Output: "\r\n\tHello↵"
}
