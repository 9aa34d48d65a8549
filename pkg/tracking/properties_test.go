package tracking_test

import (
	"reflect"
	"testing"

	"github.com/soapboxsocial/tracker/pkg/tracking"
)

func TestPropertyBag_Clone(t *testing.T) {
	bag := tracking.PropertyBag{
		"list":   []interface{}{1, map[string]interface{}{"a": 1}},
		"nested": map[string]interface{}{"b": 2},
		"plain":  "value",
	}

	clone := bag.Clone()
	if !reflect.DeepEqual(bag, clone) {
		t.Fatalf("clone %v does not match %v", clone, bag)
	}

	clone["nested"].(map[string]interface{})["b"] = 3
	clone["list"].([]interface{})[1].(map[string]interface{})["a"] = 5

	if bag["nested"].(map[string]interface{})["b"] != 2 {
		t.Fatal("nested map shared with clone")
	}

	if bag["list"].([]interface{})[1].(map[string]interface{})["a"] != 1 {
		t.Fatal("nested list shared with clone")
	}

	var empty tracking.PropertyBag
	if empty.Clone() != nil {
		t.Fatal("nil bag should clone to nil")
	}
}

func TestPropertyBag_Merge(t *testing.T) {
	base := tracking.PropertyBag{"a": 1, "b": 1}

	merged := base.Merge(map[string]interface{}{"b": 2}, tracking.PropertyBag{"c": 3})

	expected := tracking.PropertyBag{"a": 1, "b": 2, "c": 3}
	if !reflect.DeepEqual(merged, expected) {
		t.Fatalf("merged %v does not match %v", merged, expected)
	}

	if base["b"] != 1 {
		t.Fatal("merge mutated receiver")
	}
}

func TestPropertyBag_Validate(t *testing.T) {
	var tests = []struct {
		name  string
		bag   tracking.PropertyBag
		valid bool
	}{
		{"empty", tracking.PropertyBag{}, true},
		{"values", tracking.PropertyBag{"a": 1, "b": []string{"x"}}, true},
		{"empty key", tracking.PropertyBag{"": 1}, false},
		{"func", tracking.PropertyBag{"a": func() {}}, false},
		{"chan", tracking.PropertyBag{"a": make(chan int)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bag.Validate("properties")
			if (err == nil) != tt.valid {
				t.Fatalf("unexpected result %v", err)
			}
		})
	}
}

func TestList(t *testing.T) {
	var tests = []struct {
		name     string
		in       interface{}
		expected []interface{}
	}{
		{"scalar", "x", []interface{}{"x"}},
		{"list", []interface{}{"x", "y"}, []interface{}{"x", "y"}},
		{"typed", []string{"x", "y"}, []interface{}{"x", "y"}},
		{"array", [2]int{1, 2}, []interface{}{1, 2}},
		{"map", map[string]interface{}{"a": 1}, []interface{}{map[string]interface{}{"a": 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tracking.List(tt.in)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Fatalf("list %v does not match %v", result, tt.expected)
			}
		})
	}
}
