package suggest

import (
	"errors"
	"reflect"
	"testing"
)

func TestValidateArray(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []string
		wantErr error
	}{
		{name: "valid array", in: `["a", "b", "c"]`, want: []string{"a", "b", "c"}},
		{name: "elements trimmed", in: `["  X  "]`, want: []string{"X"}},
		{name: "empty elements dropped", in: `["", "a", "  "]`, want: []string{"a"}},
		{
			name: "order preserved beyond five",
			in:   `["1","2","3","4","5","6"]`,
			want: []string{"1", "2", "3", "4", "5", "6"},
		},
		{name: "not json", in: "not a list", wantErr: ErrNotArray},
		{name: "json object", in: `{"a": 1}`, wantErr: ErrNotArray},
		{name: "json string", in: `"alone"`, wantErr: ErrNotArray},
		{name: "non-string element", in: `["a", 2, "b"]`, wantErr: ErrNotStrings},
		{name: "all empty after trim", in: `["", "  "]`, wantErr: ErrNoElements},
		{name: "empty array", in: `[]`, wantErr: ErrNoElements},
		{name: "empty input", in: "", wantErr: ErrNotArray},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateArray(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ValidateArray(%q) err = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateArray(%q): %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ValidateArray(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
