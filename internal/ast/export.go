package ast

// listLabels are child labels that may repeat and export as lists.
var listLabels = map[string]bool{
	"":       true,
	"arg":    true,
	"elem":   true,
	"member": true,
	"param":  true,
}

// ToMap converts a tree into plain maps, slices and strings suitable for
// YAML or JSON encoding. Every map has a "type" key naming the variant.
func ToMap(node Node) map[string]any {
	if node == nil {
		return nil
	}
	m := map[string]any{"type": NodeType(node)}
	if pos := node.Pos(); pos.IsValid() {
		m["pos"] = pos.String()
	}
	for k, v := range attrs(node) {
		m[k] = v
	}
	for _, c := range children(node) {
		key := c.label
		if key == "" {
			key = "children"
		}
		if listLabels[c.label] {
			list, _ := m[key].([]any)
			m[key] = append(list, ToMap(c.node))
			continue
		}
		m[key] = ToMap(c.node)
	}
	return m
}

// ToMaps converts a statement sequence with ToMap.
func ToMaps(stmts []Stmt) []any {
	out := make([]any, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, ToMap(s))
	}
	return out
}

// attrs returns the non-child fields of node.
func attrs(node Node) map[string]any {
	switch n := node.(type) {
	case *Constant:
		return map[string]any{"value": n.Value, "dataType": n.Type}
	case *Literal:
		return map[string]any{"value": n.Value, "dataType": n.Type}
	case *Variable:
		return map[string]any{"name": n.Name, "dataType": n.Type}
	case *BinaryExpr:
		return map[string]any{"operator": n.Op, "dataType": n.Type}
	case *Condition:
		return map[string]any{"operator": n.Op}
	case *UnaryExpr:
		return map[string]any{"operator": n.Op, "postfix": n.Postfix}
	case *SelectorExpr:
		return map[string]any{"field": n.Field, "dataType": n.Type}
	case *FunctionCall:
		return map[string]any{"name": n.Name(), "dataType": n.Type}
	case *Declaration:
		return map[string]any{"dataType": n.Type, "name": n.Name, "array": n.IsArray}
	case *Assignment:
		m := map[string]any{"name": n.Name, "operator": n.Op}
		if n.Type != "" {
			m["dataType"] = n.Type
		}
		if n.IsArray {
			m["array"] = true
		}
		return m
	case *FunctionDecl:
		return map[string]any{"returnType": n.ReturnType, "name": n.Name, "prototype": n.IsPrototype()}
	case *Param:
		return map[string]any{"dataType": n.Type, "name": n.Name, "array": n.IsArray}
	case *StructDecl:
		return map[string]any{"keyword": structKeyword(n), "name": n.Name}
	case *EnumDecl:
		return map[string]any{"name": n.Name}
	case *Enumerator:
		return map[string]any{"name": n.Name}
	case *CaseClause:
		return map[string]any{"default": n.Value == nil}
	case *ClassDecl:
		return map[string]any{"name": n.Name}
	case *ImportDecl:
		return map[string]any{"path": n.Path}
	case *PreprocessorDirective:
		m := map[string]any{"name": n.Name, "argument": n.Arg}
		if n.File != "" {
			m["file"] = n.File
			m["system"] = n.System
		}
		return m
	default:
		return nil
	}
}
