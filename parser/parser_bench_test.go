package parser

import (
	"fmt"
	"strings"
	"testing"
)

func BenchmarkParseBytes(b *testing.B) {
	var buf strings.Builder
	for i := 0; i < 10000; i++ {
		fmt.Fprintf(&buf, "P 2016-%02d-%02d \"MUTF%d\" $%d.%02d\n", i%12+1, i%28+1, i, i%1000, i%100)
	}
	data := []byte(strings.TrimSuffix(buf.String(), "\n"))

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ParseBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}
