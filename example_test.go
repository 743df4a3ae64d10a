package web2pdf_test

import (
	"fmt"

	web2pdf "github.com/webarc/go-web2pdf"
)

func ExampleNew() {
	conv := web2pdf.New(web2pdf.WithTimeout(60000))
	fmt.Println(conv.Timeout())
	// Output: 60000
}

func ExampleConverter_SetTimeout() {
	conv := web2pdf.New()

	// Sub-second timeouts are treated as configuration mistakes and
	// silently replaced by the 30000ms default.
	conv.SetTimeout(500)
	fmt.Println(conv.Timeout())

	conv.SetTimeout(120000)
	fmt.Println(conv.Timeout())
	// Output:
	// 30000
	// 120000
}
