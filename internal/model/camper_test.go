package model

import (
	"errors"
	"testing"

	apperrors "camping-fun/server/pkg/errors"
)

func TestNewCamper_Valid(t *testing.T) {
	for _, age := range []int{MinCamperAge, 12, MaxCamperAge} {
		c, err := NewCamper("Alex", age)
		if err != nil {
			t.Fatalf("age %d: unexpected error: %v", age, err)
		}
		if c.Name != "Alex" || c.Age != age {
			t.Errorf("age %d: got %+v", age, c)
		}
	}
}

func TestNewCamper_AgeOutOfRange(t *testing.T) {
	for _, age := range []int{-1, 0, 7, 19, 100} {
		c, err := NewCamper("Alex", age)
		if err == nil {
			t.Fatalf("age %d: expected error, got camper %+v", age, c)
		}
		var ve apperrors.ValidationErrors
		if !errors.As(err, &ve) || len(ve) != 1 || ve[0].Field != "age" {
			t.Errorf("age %d: expected a single age error, got %v", age, err)
		}
	}
}

func TestNewCamper_ReportsEveryField(t *testing.T) {
	_, err := NewCamper("", 30)
	msgs, ok := apperrors.ValidationMessages(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %v", msgs)
	}
	if msgs[0] != "Camper must have a name" {
		t.Errorf("unexpected first message %q", msgs[0])
	}
}

func TestCamper_SetName(t *testing.T) {
	c := &Camper{Name: "Alex", Age: 12}

	if err := c.SetName("   "); err == nil {
		t.Error("blank name should be rejected")
	}
	if c.Name != "Alex" {
		t.Errorf("failed SetName must not modify the camper, got %q", c.Name)
	}

	if err := c.SetName("Jordan"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Jordan" {
		t.Errorf("expected Jordan, got %q", c.Name)
	}
}

func TestCamper_SetAge(t *testing.T) {
	c := &Camper{Name: "Alex", Age: 12}

	if err := c.SetAge(19); err == nil {
		t.Error("age 19 should be rejected")
	}
	if c.Age != 12 {
		t.Errorf("failed SetAge must not modify the camper, got %d", c.Age)
	}

	if err := c.SetAge(8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Age != 8 {
		t.Errorf("expected 8, got %d", c.Age)
	}
}

func TestNewActivity(t *testing.T) {
	a, err := NewActivity("Archery", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Name != "Archery" || a.Difficulty != 2 {
		t.Errorf("got %+v", a)
	}

	if _, err := NewActivity("", 1); err == nil {
		t.Error("empty activity name should be rejected")
	}
}
