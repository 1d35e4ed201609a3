package eval

import (
	"fmt"

	"github.com/shiroscript/shiro/internal/ast"
	"github.com/shiroscript/shiro/internal/diag"
	"github.com/shiroscript/shiro/internal/scope"
	"github.com/shiroscript/shiro/internal/value"
)

// evalImport resolves Path (spec §4.5): if the native registry
// recognizes Path, its factory is invoked against the shared heap;
// otherwise Path names a source module (even one that still happens to
// start with `@`) and is delegated to the runtime driver's ModuleLoader,
// which evaluates the target file fresh — module results are never
// cached. Either way the result is bound to Name in the current scope.
func (in *Interp) evalImport(n *ast.Import, sc *scope.Scope) (value.Value, error) {
	var result value.Value
	var err error

	if in.Natives.Has(n.Path) {
		result, err = in.Natives.Load(n.Path, in.HeapStore)
		if err != nil {
			return nil, fmt.Errorf(diag.ErrMsgModuleNotFound, n.Path)
		}
	} else {
		if in.ModuleLoader == nil {
			return nil, fmt.Errorf(diag.ErrMsgModuleNotFound, n.Path)
		}
		result, err = in.ModuleLoader(n.Path)
		if err != nil {
			return nil, err
		}
	}

	sc.Put(n.Name, result, true)
	return result, nil
}
