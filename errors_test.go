package formbind_test

import (
	"errors"
	"fmt"
	"testing"

	formbind "github.com/formbind/formbind"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := formbind.Issues{
		{Path: "/a", Code: formbind.CodeDuplicateName},
		{Path: "/b", Code: formbind.CodeUnknownFormat},
	}
	msg := iss.Error()
	if msg != "duplicate_name at /a; unknown_format at /b" {
		t.Fatalf("unexpected summary: %q", msg)
	}

	var many formbind.Issues
	for i := 0; i < 5; i++ {
		many = formbind.AppendIssues(many, formbind.Issue{Path: fmt.Sprintf("/f%d", i), Code: formbind.CodeInvalidType})
	}
	msg = many.Error()
	if want := "; ... (total 5)"; len(msg) == 0 || msg[len(msg)-len(want):] != want {
		t.Fatalf("expected truncation suffix, got %q", msg)
	}

	if (formbind.Issues{}).Error() != "" {
		t.Fatalf("empty issues must render empty")
	}
}

func TestAsIssues(t *testing.T) {
	iss := formbind.Issues{{Path: "/x", Code: formbind.CodeParseError}}
	wrapped := fmt.Errorf("outer: %w", iss)

	got, ok := formbind.AsIssues(wrapped)
	if !ok || len(got) != 1 || got[0].Path != "/x" {
		t.Fatalf("unwrap failed: %v %v", got, ok)
	}

	if _, ok := formbind.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain errors are not Issues")
	}
	if _, ok := formbind.AsIssues(nil); ok {
		t.Fatalf("nil is not Issues")
	}
}
