package langdetect

import (
	"testing"
)

func BenchmarkDetectSwift(b *testing.B) {
	code := []byte(`class Singleton {
    static let shared = Singleton()
    private init() {}
}`)
	b.ResetTimer()
	for range b.N {
		Detect(code)
	}
}

func BenchmarkDetectGo(b *testing.B) {
	code := []byte(`package main

import "fmt"

func main() {
	fmt.Println("Hello, World!")
}`)
	b.ResetTimer()
	for range b.N {
		Detect(code)
	}
}

func BenchmarkDetectUnknown(b *testing.B) {
	code := []byte("a short sentence that is not code")
	b.ResetTimer()
	for range b.N {
		Detect(code)
	}
}
