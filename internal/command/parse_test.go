package command

import (
	"errors"
	"testing"
)

// TestParseRejectsUnknownVerb verifies gibberish is a typed parse error.
func TestParseRejectsUnknownVerb(t *testing.T) {
	_, err := Parse("launch everything")
	var unknown *UnknownCommandError
	if !errors.As(err, &unknown) {
		t.Fatalf("wrong error: %v", err)
	}
	if unknown.Name != "launch" {
		t.Errorf("reported verb: %q", unknown.Name)
	}
}

// TestParseReportsMissingArguments verifies truncated commands name what
// was expected.
func TestParseReportsMissingArguments(t *testing.T) {
	for _, line := range []string{
		"build",
		"build kepler_prime",
		"build_ship kepler_prime",
		"cancel",
		"fleet",
		"fleet move scouts",
		"fleet create strike",
	} {
		_, err := Parse(line)
		var missing *MissingArgumentsError
		if !errors.As(err, &missing) {
			t.Errorf("%q: wrong error: %v", line, err)
		}
	}
}

// TestParseShipCounts verifies the ship:count pair syntax, including the
// bare-kind shorthand and merged duplicates.
func TestParseShipCounts(t *testing.T) {
	cmd, err := Parse("fleet create strike kepler_prime interceptor:3 ark ravager:2 interceptor:1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	create, ok := cmd.(*FleetCreateCommand)
	if !ok {
		t.Fatalf("wrong command type: %T", cmd)
	}
	if create.Ships["interceptor"] != 4 || create.Ships["ark"] != 1 || create.Ships["ravager"] != 2 {
		t.Errorf("parsed ships: %v", create.Ships)
	}
}

// TestParseRejectsBadCounts verifies zero, negative and non-numeric counts
// are invalid arguments.
func TestParseRejectsBadCounts(t *testing.T) {
	for _, line := range []string{
		"fleet add strike interceptor:0",
		"fleet add strike interceptor:-2",
		"fleet add strike interceptor:lots",
		"build_ship kepler_prime interceptor nope",
	} {
		_, err := Parse(line)
		var invalid *InvalidArgumentError
		if !errors.As(err, &invalid) {
			t.Errorf("%q: wrong error: %v", line, err)
		}
	}
}

// TestParseEndTurnAliases verifies every spelling of end-turn parses.
func TestParseEndTurnAliases(t *testing.T) {
	for _, line := range []string{"end", "end_turn", "endturn", "END"} {
		cmd, err := Parse(line)
		if err != nil {
			t.Fatalf("%q: %v", line, err)
		}
		if _, ok := cmd.(*EndTurnCommand); !ok {
			t.Errorf("%q parsed as %T", line, cmd)
		}
	}
}

// TestParseStatusTargets verifies status takes an optional multi-word
// planet name.
func TestParseStatusTargets(t *testing.T) {
	cmd, err := Parse("status Kepler Prime")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	status, ok := cmd.(*StatusCommand)
	if !ok || status.Planet != "Kepler Prime" {
		t.Errorf("parsed status: %+v", cmd)
	}

	cmd, err = Parse("status")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if status, ok := cmd.(*StatusCommand); !ok || status.Planet != "" {
		t.Errorf("bare status parsed as %+v", cmd)
	}
}
