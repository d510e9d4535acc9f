package main

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// clockedPackageSuffix пакеты, которые получают текущее время только через внедренные часы.
const clockedPackageSuffix = "internal/services"

// WallClock запрещает прямые вызовы time.Now() в сервисном слое.
// Передача time.Now как значения (например, часы по умолчанию) разрешена.
// nolint:gochecknoglobals
var WallClock = &analysis.Analyzer{
	Name: "wallclock",
	Doc:  "check for direct time.Now() calls in the service layer",
	Run:  runWallClock,
}

func runWallClock(pass *analysis.Pass) (interface{}, error) {
	if !strings.HasSuffix(pass.Pkg.Path(), clockedPackageSuffix) {
		return nil, nil //nolint:nilnil
	}
	for _, file := range pass.Files {
		if strings.HasSuffix(pass.Fset.Position(file.Pos()).Filename, "_test.go") {
			continue
		}
		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok || sel.Sel.Name != "Now" {
				return true
			}
			fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
			if ok && fn.Pkg() != nil && fn.Pkg().Path() == "time" {
				pass.Reportf(call.Pos(), "direct call time.Now() is not allowed, use the injected clock")
			}
			return true
		})
	}
	return nil, nil //nolint:nilnil
}
