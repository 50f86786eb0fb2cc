package dto

import (
	"encoding/json"
	"testing"
)

func TestUpdateCamperRequest_Presence(t *testing.T) {
	tests := []struct {
		body             string
		nameSet, nameNull bool
		ageSet, ageNull  bool
		age              int
	}{
		{body: `{}`},
		{body: `{"age": 12}`, ageSet: true, age: 12},
		{body: `{"name": null}`, nameSet: true, nameNull: true},
		{body: `{"name": "Alex", "age": null}`, nameSet: true, ageSet: true, ageNull: true},
	}

	for _, tt := range tests {
		var req UpdateCamperRequest
		if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
			t.Fatalf("%s: unmarshal: %v", tt.body, err)
		}
		if req.Name.Set != tt.nameSet || req.Name.Null != tt.nameNull {
			t.Errorf("%s: name = %+v", tt.body, req.Name)
		}
		if req.Age.Set != tt.ageSet || req.Age.Null != tt.ageNull || req.Age.Value != tt.age {
			t.Errorf("%s: age = %+v", tt.body, req.Age)
		}
	}
}

func TestOptional_RejectsWrongType(t *testing.T) {
	var req UpdateCamperRequest
	if err := json.Unmarshal([]byte(`{"age": "twelve"}`), &req); err == nil {
		t.Error("expected a decode error for a string age")
	}
}

func TestOptional_Marshal(t *testing.T) {
	b, err := json.Marshal(UpdateCamperRequest{Age: Some(9)})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"name":null,"age":9}` {
		t.Errorf("unexpected JSON %s", b)
	}
}
