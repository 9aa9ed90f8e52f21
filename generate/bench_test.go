package generate_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/generate"
)

func benchmarkGenerate(b *testing.B, alg generate.Algorithm) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := generate.Generate(101, 101, alg, generate.WithSeed(int64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDFS(b *testing.B)               { benchmarkGenerate(b, generate.DFS) }
func BenchmarkKruskal(b *testing.B)           { benchmarkGenerate(b, generate.Kruskal) }
func BenchmarkBinaryTree(b *testing.B)        { benchmarkGenerate(b, generate.BinaryTree) }
func BenchmarkWilson(b *testing.B)            { benchmarkGenerate(b, generate.Wilson) }
func BenchmarkRecursiveDivision(b *testing.B) { benchmarkGenerate(b, generate.RecursiveDivision) }

// BenchmarkAnimated measures the cost of recording the step log.
func BenchmarkAnimated(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, _ = generate.GenerateAnimated(101, 101, generate.DFS, generate.WithSeed(1))
	}
}
