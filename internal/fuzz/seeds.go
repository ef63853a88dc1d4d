package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var declarationSeeds = []string{
	"",
	" ",
	"var",
	"var a: byte;",
	"var a, k: array[2:10,10:40] of byte, d17,e7: word;",
	"var a,a: byte;",
	"var a: array[111112:10,10:40] of byte;",
	"var a: byte",
	"var longidentifier: byte;",
	"var a: array[1:2,3:4,5:6] of byte;",
	"var a: array[] of byte;",
	"var a: array[+1:+2] of real;",
	"VAR X: CHAR;",
	"var\tя1: double;\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range declarationSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.var файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".var" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
