package highlight

import (
	"reflect"
	"testing"
)

func TestTokenizeNoKeywordFastPath(t *testing.T) {
	t.Parallel()

	line := "Mar 1 10:00:03 host sshd[812]: Accepted publickey for alice"
	spans := Tokenize(line, []string{"alice"})
	want := []Span{{Text: line, Role: RolePlain}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Tokenize = %+v, want single plain span", spans)
	}
}

func TestTokenizeKeywordAndUsername(t *testing.T) {
	t.Parallel()

	line := "Mar 1 sudo: alice : COMMAND=/bin/ls"
	spans := Tokenize(line, []string{"alice"})
	want := []Span{
		{Text: "Mar 1 ", Role: RolePlain},
		{Text: "sudo", Role: RoleKeyword},
		{Text: ": ", Role: RolePlain},
		{Text: "alice", Role: RoleUsername},
		{Text: " : COMMAND=/bin/ls", Role: RolePlain},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Tokenize = %+v, want %+v", spans, want)
	}
	if Join(spans) != line {
		t.Errorf("Join = %q, want original line", Join(spans))
	}
}

func TestTokenizeConcatenationIdentity(t *testing.T) {
	t.Parallel()

	usernames := []string{"alice", "bob"}
	lines := []string{
		"",
		"sudo",
		"sudosudo",
		"alice ran sudo twice",
		"xsudox",
		"prefix su only",
		"sudoers file mentions sudo and bob",
		"a bob c sudo d alice",
		"trailing partial su",
	}
	for _, line := range lines {
		spans := Tokenize(line, usernames)
		if got := Join(spans); got != line {
			t.Errorf("Join(Tokenize(%q)) = %q, concatenation must reproduce input", line, got)
		}
	}
}

func TestTokenizeKeywordPrefixOfLongerWord(t *testing.T) {
	t.Parallel()

	// "sudoers" still triggers a keyword span on its "sudo" prefix; that is
	// accepted behavior, not a defect.
	spans := Tokenize("the sudoers file", nil)
	want := []Span{
		{Text: "the ", Role: RolePlain},
		{Text: "sudo", Role: RoleKeyword},
		{Text: "ers file", Role: RolePlain},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Tokenize = %+v, want %+v", spans, want)
	}
}

func TestTokenizeRestartsAtCurrentCharacter(t *testing.T) {
	t.Parallel()

	// In "ssudo" the candidate "ss" fails but the scan restarts at the second
	// "s", so the embedded keyword is still found.
	spans := Tokenize("ssudo", nil)
	want := []Span{
		{Text: "s", Role: RolePlain},
		{Text: "sudo", Role: RoleKeyword},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Tokenize = %+v, want %+v", spans, want)
	}
}

func TestTokenizeAdjacentKeywords(t *testing.T) {
	t.Parallel()

	spans := Tokenize("sudosudo", nil)
	want := []Span{
		{Text: "sudo", Role: RoleKeyword},
		{Text: "sudo", Role: RoleKeyword},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Tokenize = %+v, want %+v", spans, want)
	}
}

func TestTokenizeUsernameSharingKeywordPrefix(t *testing.T) {
	t.Parallel()

	// "su" is a proper prefix of both the keyword and the username; the
	// longer username candidate must still close.
	spans := Tokenize("sue ran sudo", []string{"sue"})
	want := []Span{
		{Text: "sue", Role: RoleUsername},
		{Text: " ran ", Role: RolePlain},
		{Text: "sudo", Role: RoleKeyword},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Tokenize = %+v, want %+v", spans, want)
	}
}

func TestTokenizeEmptyAndKeywordOnly(t *testing.T) {
	t.Parallel()

	if spans := Tokenize("", nil); !reflect.DeepEqual(spans, []Span{{Text: "", Role: RolePlain}}) {
		t.Errorf("Tokenize(\"\") = %+v", spans)
	}
	if spans := Tokenize("sudo", nil); !reflect.DeepEqual(spans, []Span{{Text: "sudo", Role: RoleKeyword}}) {
		t.Errorf("Tokenize(\"sudo\") = %+v", spans)
	}
}
