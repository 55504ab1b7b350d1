package semantic

import "github.com/kolkov/toyc/internal/ast"

// Terminates reports whether control cannot fall off the end of stmts:
// every path returns or loops forever. It is used to find non-void
// functions that can finish without a return.
func Terminates(stmts []ast.Stmt) bool {
	for _, s := range stmts {
		if terminates(s) {
			return true
		}
	}
	return false
}

func terminates(stmt ast.Stmt) bool {
	switch s := stmt.(type) {
	case *ast.ReturnStmt:
		return true

	case *ast.Block:
		return Terminates(stmtsOf(s))

	case *ast.IfStmt:
		if s.Else == nil || !Terminates(stmtsOf(s.Then)) || !Terminates(stmtsOf(s.Else)) {
			return false
		}
		for _, arm := range s.ElseIfs {
			if !Terminates(stmtsOf(arm.Body)) {
				return false
			}
		}
		return true

	case *ast.SwitchStmt:
		if s.Default == nil {
			return false
		}
		for _, c := range append(s.Cases[:len(s.Cases):len(s.Cases)], s.Default) {
			if len(c.Body) == 0 {
				continue // falls into the next clause
			}
			if breaks(c.Body) || !Terminates(c.Body) {
				return false
			}
		}
		return len(s.Default.Body) > 0

	case *ast.WhileLoop:
		return alwaysTrue(s.Cond) && !breaks(stmtsOf(s.Body))

	case *ast.ForLoop:
		return (s.Cond == nil || alwaysTrue(s.Cond)) && !breaks(stmtsOf(s.Body))

	case *ast.DoWhileLoop:
		body := stmtsOf(s.Body)
		if breaks(body) {
			return false
		}
		return Terminates(body) || alwaysTrue(s.Cond)
	}
	return false
}

// breaks reports whether stmts contain a break that leaves the enclosing
// loop or switch. Nested loops and switches own their breaks.
func breaks(stmts []ast.Stmt) bool {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.BreakStmt:
			return true
		case *ast.Block:
			if breaks(stmtsOf(s)) {
				return true
			}
		case *ast.IfStmt:
			if breaks(stmtsOf(s.Then)) || breaks(stmtsOf(s.Else)) {
				return true
			}
			for _, arm := range s.ElseIfs {
				if breaks(stmtsOf(arm.Body)) {
					return true
				}
			}
		}
	}
	return false
}

// alwaysTrue reports whether a loop condition is a nonzero constant or
// the literal true.
func alwaysTrue(cond ast.Expr) bool {
	switch c := cond.(type) {
	case *ast.Constant:
		for _, r := range c.Value {
			if r >= '1' && r <= '9' {
				return true
			}
			if r != '0' && r != '.' {
				break
			}
		}
		return false
	case *ast.Literal:
		return c.Value == "true"
	case *ast.ParenExpr:
		return alwaysTrue(c.X)
	}
	return false
}

func stmtsOf(b *ast.Block) []ast.Stmt {
	if b == nil {
		return nil
	}
	return b.Stmts
}
