package bigint_test

import (
	"fmt"

	"github.com/agbru/bignum/bigint"
)

func ExampleParse() {
	x, err := bigint.Parse("-0x_ff", 0)
	fmt.Println(x, err)
	y, _ := bigint.Parse("1_000_000", 0)
	fmt.Println(y)
	// Output:
	// 0 parsing "-0x_ff": malformed digit separator at offset 3
	// 1000000
}

func ExampleInt_DivMod() {
	x, y := bigint.NewInt(-17), bigint.NewInt(5)
	q, r, _ := x.QuoRem(y)
	d, m, _ := x.DivMod(y)
	fmt.Println(q, r)
	fmt.Println(d, m)
	// Output:
	// -3 -2
	// -4 3
}

func ExampleExtendedGCD() {
	g, s, t := bigint.ExtendedGCD(bigint.NewInt(35), bigint.NewInt(15))
	fmt.Println(g, s, t)
	// Output: 5 1 -2
}

func ExampleInt_Format() {
	x := bigint.NewInt(255)
	fmt.Printf("%d %x %#X %O %08b\n", x, x, x, x, x)
	// Output: 255 ff 0XFF 0o377 11111111
}
