package api

import (
	"encoding/json"
	"testing"

	"github.com/signadot/reshape"
)

func TestIssuesFromErrors(t *testing.T) {
	errs := []reshape.Error{
		{Path: ".name", Expected: "string", Actual: 5},
		{Path: ".port", Expected: "int", Missing: true},
		{Path: "", Message: "rule failed"},
	}
	issues := IssuesFromErrors(errs)
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d", len(issues))
	}
	if issues[0].Path != ".name" || issues[0].Expected != "string" {
		t.Errorf("unexpected first issue: %+v", issues[0])
	}
	if !issues[1].Missing {
		t.Error("expected second issue to be missing")
	}
	if issues[2].Message != "rule failed" {
		t.Errorf("unexpected third issue: %+v", issues[2])
	}
}

func TestIssueWireShape(t *testing.T) {
	issue := Issue{Path: ".a", Expected: "int"}
	d, err := json.Marshal(issue)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"path":".a","expected":"int"}`
	if string(d) != want {
		t.Errorf("expected %s, got %s", want, d)
	}
}
