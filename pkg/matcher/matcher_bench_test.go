package matcher

import (
	"fmt"
	"testing"
)

var benchKeys = func() []string {
	keys := make([]string, 0, 1000)
	for i := 0; i < 1000; i++ {
		keys = append(keys, fmt.Sprintf("Character %d (Real Name %d)", i, i))
	}
	return keys
}()

func BenchmarkIsLooselyEqual(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		IsLooselyEqual("Peter Parker", "Peter Benjamin Parker")
	}
}

func BenchmarkPrefixMatchAll(b *testing.B) {
	m := MustNew(Prefix, "Character 5")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.MatchAll(benchKeys...)
	}
}

func BenchmarkLooseMatchCount(b *testing.B) {
	m := MustNew(Loose, "Real Name")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.MatchCount(benchKeys...)
	}
}
