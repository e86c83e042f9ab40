package eval

import (
	"github.com/MalachiMackie/beach-lang-sub000/ast"
	"github.com/MalachiMackie/beach-lang-sub000/beacherrors"
)

// evalExpression evaluates expr against locals, returning the resulting
// Value. Operand type mismatches here (a non-Boolean operand to Not, a
// non-UInt operand to Plus/GreaterThan) are fatal: the type checker having
// already run should have ruled them out (spec.md §4.3, §7).
func (e *Evaluator) evalExpression(expr ast.Expression, locals map[string]ast.Value) ast.Value {
	switch ex := expr.(type) {
	case *ast.ValueLiteral:
		return ex.Value

	case *ast.VariableAccess:
		value, ok := locals[ex.Name]
		if !ok {
			beacherrors.Fatalf("eval: unknown variable %s; the type checker should have prevented this", ex.Name)
		}
		return value

	case *ast.FunctionCall:
		return e.evalFunctionCall(ex, locals)

	case *ast.UnaryOperation:
		return e.evalUnaryOperation(ex, locals)

	case *ast.BinaryOperation:
		return e.evalBinaryOperation(ex, locals)

	default:
		beacherrors.Fatalf("eval: unhandled expression node %T", expr)
		return nil
	}
}

func (e *Evaluator) evalUnaryOperation(op *ast.UnaryOperation, locals map[string]ast.Value) ast.Value {
	operand, ok := e.evalExpression(op.Operand, locals).(ast.BoolValue)
	if !ok {
		beacherrors.Fatalf("eval: %s operand did not evaluate to a Boolean; the type checker should have prevented this", op.Operator)
	}

	switch op.Operator {
	case ast.Not:
		return ast.BoolValue{Value: !operand.Value}
	default:
		beacherrors.Fatalf("eval: unhandled unary operator %s", op.Operator)
		return nil
	}
}

// evalBinaryOperation evaluates left then right (spec.md §4.3's mandated
// order) before combining them. UInt addition wraps using Go's native
// uint32 arithmetic (spec.md §9's resolved Open Question).
func (e *Evaluator) evalBinaryOperation(op *ast.BinaryOperation, locals map[string]ast.Value) ast.Value {
	left, leftOk := e.evalExpression(op.Left, locals).(ast.UIntValue)
	right, rightOk := e.evalExpression(op.Right, locals).(ast.UIntValue)
	if !leftOk || !rightOk {
		beacherrors.Fatalf("eval: %s operands did not evaluate to UInt; the type checker should have prevented this", op.Operator)
	}

	switch op.Operator {
	case ast.Plus:
		return ast.UIntValue{Value: left.Value + right.Value}
	case ast.GreaterThan:
		return ast.BoolValue{Value: left.Value > right.Value}
	default:
		beacherrors.Fatalf("eval: unhandled binary operator %s", op.Operator)
		return nil
	}
}
