package semantic

import (
	"fmt"

	"github.com/kolkov/toyc/internal/token"
)

// VarInfo is what a scope records about one variable.
type VarInfo struct {
	Name        string
	Type        string // declared type, e.g. "int" or "unsigned long"
	Initialized bool
	IsArray     bool
	Pos         token.Position // declaration position
}

// FuncInfo describes a declared function.
type FuncInfo struct {
	Name       string
	ReturnType string
	ParamTypes []string
	Defined    bool // has a body, not just a prototype
	Pos        token.Position
}

// SymbolTable is a stack of lexical scopes, innermost last.
// Lookups walk from the innermost scope outward, so inner declarations
// shadow outer ones. The global scope is never popped.
//
// Functions live in a separate flat namespace.
type SymbolTable struct {
	scopes []map[string]*VarInfo
	funcs  map[string]*FuncInfo
}

// NewSymbolTable creates a table holding only the global scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		scopes: []map[string]*VarInfo{make(map[string]*VarInfo)},
		funcs:  make(map[string]*FuncInfo),
	}
}

// PushScope opens a new innermost scope.
func (st *SymbolTable) PushScope() {
	st.scopes = append(st.scopes, make(map[string]*VarInfo))
}

// PopScope closes the innermost scope. The global scope stays.
func (st *SymbolTable) PopScope() {
	if len(st.scopes) > 1 {
		st.scopes = st.scopes[:len(st.scopes)-1]
	}
}

// Depth returns the number of open scopes, including the global one.
func (st *SymbolTable) Depth() int {
	return len(st.scopes)
}

// Declare adds name to the innermost scope. It returns false when the
// innermost scope already holds name; outer declarations may be shadowed.
func (st *SymbolTable) Declare(name, typ string, pos token.Position) bool {
	return st.DeclareVar(&VarInfo{Name: name, Type: typ, Pos: pos})
}

// DeclareVar is Declare with full control over the recorded info.
func (st *SymbolTable) DeclareVar(v *VarInfo) bool {
	top := st.scopes[len(st.scopes)-1]
	if _, exists := top[v.Name]; exists {
		return false
	}
	top[v.Name] = v
	return true
}

// Assign marks the innermost visible declaration of name as initialized.
// It returns false if no scope declares name.
func (st *SymbolTable) Assign(name string) bool {
	v, ok := st.Lookup(name)
	if !ok {
		return false
	}
	v.Initialized = true
	return true
}

// Lookup finds the innermost visible declaration of name.
func (st *SymbolTable) Lookup(name string) (*VarInfo, bool) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if v, ok := st.scopes[i][name]; ok {
			return v, true
		}
	}
	return nil, false
}

// LookupLocal searches only the innermost scope.
func (st *SymbolTable) LookupLocal(name string) (*VarInfo, bool) {
	v, ok := st.scopes[len(st.scopes)-1][name]
	return v, ok
}

// DeclareFunc records a function prototype or definition. It returns
// false if fn is a definition and a definition of the same name exists.
// A later definition replaces an earlier prototype.
func (st *SymbolTable) DeclareFunc(fn *FuncInfo) bool {
	prev, ok := st.funcs[fn.Name]
	if ok && prev.Defined && fn.Defined {
		return false
	}
	if ok && prev.Defined {
		return true
	}
	st.funcs[fn.Name] = fn
	return true
}

// LookupFunc returns the signature recorded for name.
func (st *SymbolTable) LookupFunc(name string) (*FuncInfo, bool) {
	fn, ok := st.funcs[name]
	return fn, ok
}

// BuiltinInfo gives the accepted argument counts of a library call.
type BuiltinInfo struct {
	Name    string
	MinArgs int
	MaxArgs int // -1 for variadic
}

// builtinFuncs maps a call's final path element to its arity per dialect.
var builtinFuncs = [...]map[string]BuiltinInfo{
	token.C: {
		"print":   {Name: "print", MinArgs: 1, MaxArgs: 1},
		"printf":  {Name: "printf", MinArgs: 1, MaxArgs: -1},
		"scanf":   {Name: "scanf", MinArgs: 1, MaxArgs: -1},
		"puts":    {Name: "puts", MinArgs: 1, MaxArgs: 1},
		"putchar": {Name: "putchar", MinArgs: 1, MaxArgs: 1},
		"getchar": {Name: "getchar", MinArgs: 0, MaxArgs: 0},
	},
	token.Java: {
		"println": {Name: "println", MinArgs: 1, MaxArgs: 1},
		"print":   {Name: "print", MinArgs: 1, MaxArgs: 1},
	},
}

// LookupBuiltin returns arity information for a library call.
func LookupBuiltin(d token.Dialect, name string) (BuiltinInfo, bool) {
	if int(d) >= len(builtinFuncs) {
		return BuiltinInfo{}, false
	}
	info, ok := builtinFuncs[d][name]
	return info, ok
}

// Arity describes an accepted argument count, e.g. "at least 1 argument".
func Arity(lo, hi int) string {
	plural := func(n int) string {
		if n == 1 {
			return "1 argument"
		}
		return fmt.Sprintf("%d arguments", n)
	}
	switch {
	case hi < 0:
		return "at least " + plural(lo)
	case lo == hi:
		return plural(lo)
	default:
		return fmt.Sprintf("%d to %d arguments", lo, hi)
	}
}

// Accepts reports whether n arguments satisfy the builtin's arity.
func (b BuiltinInfo) Accepts(n int) bool {
	return n >= b.MinArgs && (b.MaxArgs < 0 || n <= b.MaxArgs)
}
