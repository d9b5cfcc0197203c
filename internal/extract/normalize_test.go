package extract

import (
	"reflect"
	"testing"
)

func TestNormalizeLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "trims whitespace",
			input: "  Coffee Shop  \n\t- $4.50\t",
			want:  []string{"Coffee Shop", "- $4.50"},
		},
		{
			name:  "truncates at chrome keyword",
			input: "Thursday 22 May 2025\nCoffee Shop\n- $4.50\nAccounts\nTransfer & pay",
			want:  []string{"Thursday 22 May 2025", "Coffee Shop", "- $4.50"},
		},
		{
			name:  "chrome keyword as prefix also truncates",
			input: "Coffee Shop\nMove Money to savings\n- $4.50",
			want:  []string{"Coffee Shop"},
		},
		{
			name:  "chrome keyword on first line yields empty",
			input: "Accounts\nCoffee Shop",
			want:  nil,
		},
		{
			name:  "blank lines are kept",
			input: "Coffee Shop\n\n- $4.50",
			want:  []string{"Coffee Shop", "", "- $4.50"},
		},
		{
			name:  "chrome word mid-line does not truncate",
			input: "Transfer to Accounts team\n- $4.50",
			want:  []string{"Transfer to Accounts team", "- $4.50"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLines(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeLines(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}
