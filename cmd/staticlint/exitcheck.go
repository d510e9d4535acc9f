package main

import (
	"go/ast"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// NoDirectOsExit запрещает прямые вызовы os.Exit в функции main пакета main.
// Вызов распознается по типам, в том числе при импорте os под другим именем.
// nolint:gochecknoglobals
var NoDirectOsExit = &analysis.Analyzer{
	Name: "nodirectosexit",
	Doc:  "check for direct os.Exit calls in main function",
	Run:  runNoDirectOsExit,
}

func runNoDirectOsExit(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil //nolint:nilnil
	}
	for _, file := range pass.Files {
		// Пропускаем файлы из кэша сборки
		if strings.Contains(pass.Fset.Position(file.Pos()).Filename, "go-build") {
			continue
		}
		for _, decl := range file.Decls {
			funcDecl, ok := decl.(*ast.FuncDecl)
			if !ok || funcDecl.Recv != nil || funcDecl.Name.Name != "main" || funcDecl.Body == nil {
				continue
			}
			ast.Inspect(funcDecl.Body, func(n ast.Node) bool {
				callExpr, isCall := n.(*ast.CallExpr)
				if !isCall || !isOsExit(pass, callExpr) {
					return true
				}
				position := pass.Fset.Position(callExpr.Pos())
				pass.Reportf(
					callExpr.Pos(),
					"%s:%d: direct call os.Exit is not allowed in main function",
					filepath.Base(position.Filename),
					position.Line,
				)
				return true
			})
		}
	}
	return nil, nil //nolint:nilnil
}

func isOsExit(pass *analysis.Pass, call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Exit" {
		return false
	}
	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	return ok && fn.Pkg() != nil && fn.Pkg().Path() == "os"
}
