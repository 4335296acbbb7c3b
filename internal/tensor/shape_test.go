package tensor

import (
	"errors"
	"testing"
)

func TestShapeNumElements(t *testing.T) {
	cases := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1}, // rank-0 scalar
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 0, 3}, 0},
	}
	for _, c := range cases {
		if got := c.shape.NumElements(); got != c.want {
			t.Errorf("NumElements(%v) = %d, want %d", c.shape, got, c.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate({2,3}) = %v, want nil", err)
	}
	if err := (Shape{0}).Validate(); err != nil {
		t.Errorf("Validate({0}) = %v, want nil (zero dims are degenerate, not invalid)", err)
	}
	err := (Shape{2, -1}).Validate()
	if !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Validate({2,-1}) = %v, want ErrInvalidShape", err)
	}
}

func TestShapeEqual(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("equal shapes reported unequal")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("unequal shapes reported equal")
	}
	if (Shape{2, 3}).Equal(Shape{2, 3, 1}) {
		t.Error("shapes of different rank reported equal")
	}
}

func TestShapeClone(t *testing.T) {
	s := Shape{4, 5}
	c := s.Clone()
	c[0] = 9
	if s[0] != 4 {
		t.Error("Clone should not share backing storage")
	}
}

func TestDataTypeSizeAndString(t *testing.T) {
	cases := []struct {
		dtype DataType
		size  int
		name  string
	}{
		{Float32, 4, "float32"},
		{Int32, 4, "int32"},
		{Bool, 1, "bool"},
	}
	for _, c := range cases {
		if c.dtype.Size() != c.size {
			t.Errorf("%s.Size() = %d, want %d", c.name, c.dtype.Size(), c.size)
		}
		if c.dtype.String() != c.name {
			t.Errorf("String() = %q, want %q", c.dtype.String(), c.name)
		}
		if !c.dtype.Valid() {
			t.Errorf("%s should be valid", c.name)
		}
	}
	if DataType(99).Valid() {
		t.Error("DataType(99) should not be valid")
	}
}
