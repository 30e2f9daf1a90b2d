package parser

import (
	"testing"
)

// FuzzParseBytes checks that arbitrary input never panics the parser and that
// anything that parses successfully survives a serialize/re-parse round trip.
func FuzzParseBytes(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte(`P 2016-07-10 "MUTF25" $5.82`))
	f.Add([]byte("P 2016-07-10 US$ 1.30711 CAD"))
	f.Add([]byte("P 2016-07-10 \"MUTF25\" $5.82\nP 2016-07-12 AAPL $96.68"))
	f.Add([]byte("P 2016-02-30 AAPL $5.82"))
	f.Add([]byte("P 2016-07-10 AAPL $5.8.2"))
	f.Add([]byte("-"))
	f.Add([]byte("P"))
	f.Add([]byte("\n\n\n"))
	f.Add([]byte(`P 2016-07-10 "unterminated`))

	f.Fuzz(func(t *testing.T, data []byte) {
		db, err := ParseBytes(data)
		if err != nil {
			return
		}

		again, err := ParseString(db.String())
		if err != nil {
			t.Fatalf("round trip failed to re-parse %q: %v", db.String(), err)
		}
		if got, want := again.String(), db.String(); got != want {
			t.Fatalf("round trip mismatch: got %q, want %q", got, want)
		}
	})
}
