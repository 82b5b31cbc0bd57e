package simterms

import "fmt"

// ErrUnknownUnitSet indicates that a requested unit set does not exist in the
// loaded unit terminology. This is a configuration mistake, not a data
// quality issue, and is therefore reported to the caller instead of being
// recovered locally.
type ErrUnknownUnitSet struct {
	UnitSet string
}

func (e *ErrUnknownUnitSet) Error() string {
	return fmt.Sprintf("unknown unit set: %q", e.UnitSet)
}
