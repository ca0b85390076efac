package model

import (
	"fmt"
	"strings"
)

// Mode selects which output schema, alias table and fill targets govern a
// merge invocation.
type Mode int

const (
	ModeDDNS Mode = iota
	ModeMinION
)

func (m Mode) String() string {
	switch m {
	case ModeDDNS:
		return "DDNS"
	case ModeMinION:
		return "minION"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "ddns":
		return ModeDDNS, nil
	case "minion":
		return ModeMinION, nil
	}
	return 0, fmt.Errorf("unknown mode %q, expected ddns or minion", s)
}

// Action decides whether run constants are filled in (merge) or the sheet is
// only reshaped and validated (update).
type Action int

const (
	ActionMerge Action = iota
	ActionUpdate
)

func (a Action) String() string {
	switch a {
	case ActionMerge:
		return "merge"
	case ActionUpdate:
		return "update"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

func ParseAction(s string) (Action, error) {
	switch strings.ToLower(s) {
	case "merge":
		return ActionMerge, nil
	case "update":
		return ActionUpdate, nil
	}
	return 0, fmt.Errorf("unknown action %q, expected merge or update", s)
}

// OperatorInputs is the snapshot of run-level values entered by the operator,
// taken once when the merge is invoked.
type OperatorInputs struct {
	Lab             string
	RunNumber       string
	PipelineVersion string
	RTDate          string
	VP1Date         string
	PCRMachine      string
	VP1PCRMachine   string
	RTPCRPrimers    string
	VP1Primers      string
	PositiveControl string
	NegativeControl string
	SeqKit          string
	FlowCellUses    string
	FlowCellPores   string
	SeqHours        string
	FastaDate       string
}

// RunMetadata holds the scalar fields extracted from a sequencer run report.
// Zero values mean the report did not provide the field.
type RunMetadata struct {
	MinKNOWVersion string
	FlowCellID     string
	KitType        string
	RunHours       string
	SeqDate        string
	PoreCount      int
}
