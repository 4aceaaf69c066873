package validation

import "testing"

func TestParsePositiveAmount(t *testing.T) {
	cases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"50", "50", false},
		{" 12.5 ", "12.5", false},
		{"0.01", "0.01", false},
		{"0", "", true},
		{"-3", "", true},
		{"1.234", "", true},
		{"abc", "", true},
		{"", "", true},
		{"1e20", "", true},
	}

	for _, tc := range cases {
		got, err := ParsePositiveAmount(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParsePositiveAmount(%q) = %s, want error", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePositiveAmount(%q) err=%v", tc.input, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ParsePositiveAmount(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestParseInitialDeposit(t *testing.T) {
	for _, input := range []string{"", "0", "100", "0.99"} {
		if _, err := ParseInitialDeposit(input); err != nil {
			t.Errorf("ParseInitialDeposit(%q) err=%v", input, err)
		}
	}
	for _, input := range []string{"-1", "x", "3.141"} {
		if _, err := ParseInitialDeposit(input); err == nil {
			t.Errorf("ParseInitialDeposit(%q) want error", input)
		}
	}

	got, _ := ParseInitialDeposit("")
	if !got.IsZero() {
		t.Fatalf("empty input = %s, want 0", got)
	}
}
