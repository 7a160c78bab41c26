package hufftext_test

import (
	"fmt"

	"github.com/arloliu/hufftext"
	"github.com/arloliu/hufftext/codec"
	"github.com/arloliu/hufftext/format"
	"github.com/arloliu/hufftext/freq"
)

func Example() {
	table, err := hufftext.BuildFrequencyTable([]string{"abc", "abc", "def"},
		freq.WithMaxNGramLength(3),
		freq.WithEndOfSequence(codec.DefaultEndOfSequence),
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(table.Serialize()))

	c, err := hufftext.NewCodec(
		codec.WithFrequencyTable(table),
		codec.WithOutputEncoding(format.EncodingBin),
	)
	if err != nil {
		panic(err)
	}

	code, _ := c.Encode("abcdef")
	text, _ := c.Decode(code)
	fmt.Println(code, text)
	// Output:
	// {"\u0000":3,"abc":2,"def":1}
	// 11100 abcdef
}
