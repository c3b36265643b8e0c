// Package main содержит multichecker для статического анализа кода проекта.
//
// Состав анализаторов:
//
//  1. Стандартные анализаторы golang.org/x/tools/go/analysis/passes:
//     assign, atomic, bools, buildtag, copylocks, nilness, printf,
//     shadow, unreachable.
//
//  2. Все анализаторы класса SA из staticcheck.io — поиск багов и
//     подозрительных конструкций.
//
//  3. Отдельные анализаторы других классов staticcheck.io:
//     ST1000 (именование пакетов) и S1000 (упрощения кода).
//
//  4. Публичный анализатор errcheck — контроль обработки ошибок.
//
//  5. Собственный анализатор noexit — запрет прямого вызова os.Exit
//     в функции main пакета main.
//
// Использование:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"strings"

	"github.com/kisielk/errcheck/errcheck"
	"github.com/tempizhere/golinks/cmd/staticlint/noexit"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/buildtag"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

func main() {
	analyzers := []*analysis.Analyzer{
		assign.Analyzer,
		atomic.Analyzer,
		bools.Analyzer,
		buildtag.Analyzer,
		copylock.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		unreachable.Analyzer,
		errcheck.Analyzer,
		noexit.Analyzer,
	}

	// Все SA-анализаторы staticcheck
	for _, v := range staticcheck.Analyzers {
		if strings.HasPrefix(v.Analyzer.Name, "SA") {
			analyzers = append(analyzers, v.Analyzer)
		}
	}

	// Отдельные анализаторы других классов
	for _, v := range stylecheck.Analyzers {
		if v.Analyzer.Name == "ST1000" {
			analyzers = append(analyzers, v.Analyzer)
		}
	}
	for _, v := range simple.Analyzers {
		if v.Analyzer.Name == "S1000" {
			analyzers = append(analyzers, v.Analyzer)
		}
	}

	multichecker.Main(analyzers...)
}
