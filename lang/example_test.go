package lang_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/ardnew/molang/lang"
)

func Example() {
	b := lang.NewBuilder()
	x := b.Define("x", 2)

	e := b.MustParse("x > 1 ? x ** 2 : -x")
	fmt.Println(e, "=", lang.Eval(e))

	x.Set(-3)
	fmt.Println(e, "=", lang.Eval(e))
	// Output:
	// x > 1 ? x ** 2 : -x = 4
	// x > 1 ? x ** 2 : -x = 3
}

func ExampleBuilder_Parse_statements() {
	b := lang.NewBuilder()

	e := b.MustParse("r = 2; area = PI * r ** 2; return floor(area)")
	fmt.Println(lang.Eval(e))
	fmt.Println(b.Variable("area").Value > 12)
	// Output:
	// 12
	// true
}

func ExampleBuilder_Parse_error() {
	_, err := lang.NewBuilder().Parse("sqrt(1, 2)")

	fmt.Println(errors.Is(err, lang.ErrArityMismatch))

	var e *lang.Error
	if errors.As(err, &e) {
		fn, _ := e.Attr("function")
		want, _ := e.Attr("want")
		got, _ := e.Attr("got")
		fmt.Println(fn, want, got)
	}
	// Output:
	// true
	// sqrt 1 2
}

func ExampleBuilder_RegisterFunction() {
	b := lang.NewBuilder()
	b.RegisterFunction("hypot", lang.Fixed(2, func(a []float64) float64 {
		return math.Hypot(a[0], a[1])
	}))

	fmt.Println(lang.Eval(b.MustParse("hypot(3, 4)")))
	// Output: 5
}

func ExampleLoadEnv() {
	b := lang.NewBuilder()

	err := lang.LoadEnv(context.Background(), b, strings.NewReader("constants: {g: 10}\nvariables: {t: 3}\n"))
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(lang.Eval(b.MustParse("g * t ** 2 / 2")))
	// Output: 45
}

func ExampleFormat() {
	e := lang.NewBuilder().MustParse("a=1;b=a*2;return a+b")

	_ = lang.Format(context.Background(), os.Stdout, e, 2)
	// Output:
	// a = 1;
	// b = a * 2;
	// return a + b;
}
