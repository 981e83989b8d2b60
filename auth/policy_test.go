package auth

import (
	"strings"
	"testing"
)

func TestCheckPolicy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pw      string
		wantErr string
	}{
		{pw: "Short1!", wantErr: "at least 12"},
		{pw: "alllowercase1!", wantErr: "uppercase"},
		{pw: "NoDigitsHere!!", wantErr: "digit"},
		{pw: "NoSpecials1234", wantErr: "special"},
		{pw: "Correct-Horse-9", wantErr: ""},
		{pw: "Ünïcödé-Pässwörd1", wantErr: ""},
	}

	for _, tc := range cases {
		err := CheckPolicy([]byte(tc.pw))
		if tc.wantErr == "" {
			if err != nil {
				t.Fatalf("CheckPolicy(%q) = %v, want nil", tc.pw, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
			t.Fatalf("CheckPolicy(%q) = %v, want error containing %q", tc.pw, err, tc.wantErr)
		}
	}
}

func TestCheckPolicyCountsRunesNotBytes(t *testing.T) {
	t.Parallel()

	// 11 characters but more than 12 bytes.
	if err := CheckPolicy([]byte("Äöü-Äöü-1ab")); err == nil {
		t.Fatal("expected length error for 11 character password")
	}
}
