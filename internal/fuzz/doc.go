// Package fuzztests houses Go fuzz harnesses for the declaration pipeline
// (source -> lexer -> analyzer). They guard against panics and check the
// properties that must hold for any input.
//
// Назначение: прогонять произвольные байты через FileSet, лексер и валидатор.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/analyzer.

package fuzztests
