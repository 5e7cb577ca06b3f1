// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Answer is the predicate function for answer builders.
type Answer func(*sql.Selector)

// Flow is the predicate function for flow builders.
type Flow func(*sql.Selector)

// FlowVersion is the predicate function for flowversion builders.
type FlowVersion func(*sql.Selector)

// Instrument is the predicate function for instrument builders.
type Instrument func(*sql.Selector)

// InstrumentVersion is the predicate function for instrumentversion builders.
type InstrumentVersion func(*sql.Selector)

// ScreeningSession is the predicate function for screeningsession builders.
type ScreeningSession func(*sql.Selector)

// SessionInstrument is the predicate function for sessioninstrument builders.
type SessionInstrument func(*sql.Selector)

// Triage is the predicate function for triage builders.
type Triage func(*sql.Selector)

// TriageGroup is the predicate function for triagegroup builders.
type TriageGroup func(*sql.Selector)
