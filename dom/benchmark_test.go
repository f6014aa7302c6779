package dom

import (
	"strings"
	"testing"
)

var benchInput = strings.Repeat(
	`<!DOCTYPE html><body><div class="card"><p>Hello</p>Happy<!-- note --></div><span>x</span></body>`,
	64,
)

func BenchmarkTokenize(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		Tokenize(benchInput, nil)
	}
}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		Parse(benchInput, nil, nil)
	}
}

func BenchmarkSerialize(b *testing.B) {
	warns := newWarnings(b)
	out := Parse(benchInput, nil, warns)

	b.ResetTimer()
	for b.Loop() {
		Serialize(out, warns)
	}
}
