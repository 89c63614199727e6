package runtime

import "testing"

func TestEqualBothNone(t *testing.T) {
	eq, err := Equal(None(), None(), nil)
	if err != nil {
		t.Fatalf("Equal: %v", err)
	}
	if !eq {
		t.Fatalf("expected None == None")
	}
}

func TestEqualNoneVsZeroIsAnError(t *testing.T) {
	// None == 0 is a deliberate error, not a false: both operands must be
	// None, or the same non-None kind, for equality to be defined.
	if _, err := Equal(None(), Own(Number{Value: 0}), nil); err == nil {
		t.Fatalf("expected an error comparing None to 0")
	}
}

func TestEqualFalseVsZeroIsAnError(t *testing.T) {
	if _, err := Equal(Own(Boolean{Value: false}), Own(Number{Value: 0}), nil); err == nil {
		t.Fatalf("expected an error comparing False to 0")
	}
}

func TestEqualSameKind(t *testing.T) {
	cases := []struct {
		name     string
		lhs, rhs Handle
		want     bool
	}{
		{"numbers equal", Own(Number{Value: 3}), Own(Number{Value: 3}), true},
		{"numbers differ", Own(Number{Value: 3}), Own(Number{Value: 4}), false},
		{"booleans equal", Own(Boolean{Value: true}), Own(Boolean{Value: true}), true},
		{"strings equal", Own(String{Value: "a"}), Own(String{Value: "a"}), true},
		{"strings differ", Own(String{Value: "a"}), Own(String{Value: "b"}), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Equal(c.lhs, c.rhs, nil)
			if err != nil {
				t.Fatalf("Equal: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestLessStringsLexicographic(t *testing.T) {
	less, err := Less(Own(String{Value: "apple"}), Own(String{Value: "banana"}), nil)
	if err != nil {
		t.Fatalf("Less: %v", err)
	}
	if !less {
		t.Fatalf("expected \"apple\" < \"banana\"")
	}
}

func TestDerivedRelations(t *testing.T) {
	lhs, rhs := Own(Number{Value: 3}), Own(Number{Value: 5})

	if ne, err := NotEqual(lhs, rhs, nil); err != nil || !ne {
		t.Fatalf("NotEqual(3, 5) = %v, %v", ne, err)
	}
	if gt, err := Greater(lhs, rhs, nil); err != nil || gt {
		t.Fatalf("Greater(3, 5) = %v, %v", gt, err)
	}
	if le, err := LessOrEqual(lhs, rhs, nil); err != nil || !le {
		t.Fatalf("LessOrEqual(3, 5) = %v, %v", le, err)
	}
	if ge, err := GreaterOrEqual(rhs, lhs, nil); err != nil || !ge {
		t.Fatalf("GreaterOrEqual(5, 3) = %v, %v", ge, err)
	}
	if eq, err := Equal(lhs, lhs, nil); err != nil || !eq {
		t.Fatalf("Equal(3, 3) = %v, %v", eq, err)
	}
}

func TestEqualDispatchesToUserDefinedEq(t *testing.T) {
	class := NewClass("W", []Method{
		{Name: "__eq__", Params: []string{"other"}, Body: alwaysTrueBody{}},
	}, nil)
	lhs := Own(NewClassInstance(class))
	rhs := Own(NewClassInstance(class))

	eq, err := Equal(lhs, rhs, nil)
	if err != nil {
		t.Fatalf("Equal: %v", err)
	}
	if !eq {
		t.Fatalf("expected __eq__ dispatch to report equal")
	}
}

// alwaysTrueBody is a minimal Executable standing in for a method body
// that unconditionally returns True, used to exercise __eq__/__lt__
// dispatch without pulling in the ast package (which itself depends on
// this package, so importing it here would cycle).
type alwaysTrueBody struct{}

func (alwaysTrueBody) Execute(scope Scope, ctx Context) (Handle, error) {
	return Own(Boolean{Value: true}), nil
}
