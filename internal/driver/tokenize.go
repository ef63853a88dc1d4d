package driver

import (
	"vardecl/internal/lexer"
	"vardecl/internal/source"
	"vardecl/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
}

// Tokenize loads path and splits it into tokens.
func Tokenize(path string) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID), nil
}

// TokenizeString splits text given inline; it is stored as-is.
func TokenizeString(name, text string) *TokenizeResult {
	fs := source.NewFileSet()
	return tokenizeFile(fs, fs.AddVirtual(name, []byte(text)))
}

func tokenizeFile(fs *source.FileSet, id source.FileID) *TokenizeResult {
	file := fs.Get(id)
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lexer.NewFile(file).All(),
	}
}

// TokenizeBytes splits content read from a stream, normalized like a file.
func TokenizeBytes(name string, content []byte) *TokenizeResult {
	fs := source.NewFileSet()
	return tokenizeFile(fs, fs.AddNormalized(name, content, source.FileVirtual))
}
