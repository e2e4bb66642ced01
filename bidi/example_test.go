package bidi_test

import (
	"fmt"

	"github.com/splix/soyutils-requirejs/bidi"
)

func ExampleEstimateTextDirection() {
	fmt.Println(bidi.EstimateTextDirection("hello", false))
	fmt.Println(bidi.EstimateTextDirection("אבג", false))
	fmt.Println(bidi.EstimateTextDirection("<b>42</b>", true))
	// Output:
	// ltr
	// rtl
	// unknown
}

func ExampleRTLWordRatio() {
	fmt.Printf("%.2f\n", bidi.RTLWordRatio("שלום world !!"))
	// Output: 0.50
}
