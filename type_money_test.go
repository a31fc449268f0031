package lootledger

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		name string
		m    Money
		want string
	}{
		{"zero", 0, "0c"},
		{"copper only", 56, "56c"},
		{"silver and copper", 3*Silver + 7, "3s 7c"},
		{"round gold", 12 * Gold, "12g"},
		{"all denominations", Coins(12, 34, 56), "12g 34s 56c"},
		{"negative", -Coins(1, 0, 5), "-1g 5c"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.String(); got != tc.want {
				t.Errorf("String(%d) = %q, want %q", int64(tc.m), got, tc.want)
			}
		})
	}
}

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Money
		wantErr bool
	}{
		{"bare copper", "12345", 12345, false},
		{"coin notation", "1g 23s 45c", Coins(1, 23, 45), false},
		{"no spaces", "2g50s", Coins(2, 50, 0), false},
		{"silver only", "15s", 15 * Silver, false},
		{"negative", "-5g", -5 * Gold, false},
		{"garbage", "gold", 0, true},
		{"empty", "", 0, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMoney(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseMoney(%q) = %s, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMoney(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseMoney(%q) = %d, want %d", tc.in, int64(got), int64(tc.want))
			}
		})
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := Money(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want %q", got, "-")
	}
	if got := Money(150).SignedString(); got != "+1s 50c" {
		t.Errorf("SignedString(150) = %q, want %q", got, "+1s 50c")
	}
	if got := Money(-3).SignedString(); got != "-3c" {
		t.Errorf("SignedString(-3) = %q, want %q", got, "-3c")
	}
}
