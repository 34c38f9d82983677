package normalize

import (
	"reflect"
	"testing"
)

func TestToInternal(t *testing.T) {
	tests := []struct {
		name     string
		in       map[string]any
		expected map[string]any
	}{
		{
			name:     "snake keys renamed",
			in:       map[string]any{"first_name": "Marie", "birth_date": "2000-05-01"},
			expected: map[string]any{"firstName": "Marie", "birthDate": "2000-05-01"},
		},
		{
			name:     "plain keys untouched",
			in:       map[string]any{"id": 1, "name": "x"},
			expected: map[string]any{"id": 1, "name": "x"},
		},
		{
			name:     "nested values pass through unrenamed",
			in:       map[string]any{"quiz_scores": map[string]any{"module_one": 10}},
			expected: map[string]any{"quizScores": map[string]any{"module_one": 10}},
		},
		{
			name:     "nil returns nil",
			in:       nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToInternal(tt.in)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ToInternal(%v) = %v, expected %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestToExternal(t *testing.T) {
	in := map[string]any{"firstName": "Marie", "imageUrl": "x", "id": "m1"}
	expected := map[string]any{"first_name": "Marie", "image_url": "x", "id": "m1"}

	if got := ToExternal(in); !reflect.DeepEqual(got, expected) {
		t.Errorf("ToExternal(%v) = %v, expected %v", in, got, expected)
	}

	if got := ToExternal(nil); got != nil {
		t.Errorf("ToExternal(nil) = %v, expected nil", got)
	}
}

// Applying ToInternal to an already internal record is a no-op, so the
// round trip through ToExternal and back is stable after one application.
func TestRoundTripIdempotence(t *testing.T) {
	row := map[string]any{"first_name": "Aïcha", "last_name": "Ndong", "is_public": true}

	once := ToInternal(row)
	again := ToInternal(ToExternal(once))

	if !reflect.DeepEqual(once, again) {
		t.Errorf("round trip diverged: %v vs %v", once, again)
	}
}
